// Package handler contains the HTTP handlers of the catalog API.
package handler

import (
	"strconv"

	domainerrors "precario/internal/domain/errors"
	"precario/internal/domain/match"
	"precario/internal/pagination"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage = 0
	defaultSize = 10
)

// pathID parses the :id path parameter. A malformed id resolves nothing.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrNaoEncontrado
	}

	return id, nil
}

// paging reads the page/size query parameters. Presence of either switches
// the list endpoint to the paged envelope.
func paging(c echo.Context) (page, size int, paged bool, err error) {
	pageParam := c.QueryParam("page")
	sizeParam := c.QueryParam("size")
	if pageParam == "" && sizeParam == "" {
		return 0, 0, false, nil
	}

	page, size = defaultPage, defaultSize
	if pageParam != "" {
		page, err = strconv.Atoi(pageParam)
		if err != nil || page < 0 {
			return 0, 0, false, domainerrors.NewDadosInvalidos("pagina_invalida")
		}
	}
	if sizeParam != "" {
		size, err = strconv.Atoi(sizeParam)
		if err != nil || size < 1 {
			return 0, 0, false, domainerrors.NewDadosInvalidos("pagina_invalida")
		}
	}

	return page, size, true, nil
}

// links builds the navigation link builder for a collection path, carrying
// the request's filter parameters; page/size are substituted per generated
// link.
func links(c echo.Context, path string) pagination.LinkBuilder {
	return pagination.LinkBuilder{
		Path:  path,
		Query: c.QueryParams(),
	}
}

// critFromQuery assembles the fuzzy list filter from allowlisted query
// parameters: text fields match by case-insensitive containment, reference
// fields by exact id.
func critFromQuery(c echo.Context, textos, numeros []string) (*match.Criteria, error) {
	crit := match.New()
	for _, campo := range textos {
		if v := c.QueryParam(campo); v != "" {
			crit.FoldContains(campo, v)
		}
	}
	for _, campo := range numeros {
		v := c.QueryParam(campo)
		if v == "" {
			continue
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, domainerrors.NewDadosInvalidos(campo + "_invalido")
		}
		crit.Eq(campo, id)
	}

	return crit, nil
}
