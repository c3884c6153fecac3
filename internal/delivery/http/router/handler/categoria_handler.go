package handler

import (
	"context"
	"log/slog"
	"net/http"

	"precario/internal/delivery/http/response"
	"precario/internal/domain/entity"
	"precario/internal/pagination"
	"precario/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const categoriasPath = "/categorias"

// CategoriaHandler holds dependencies for the category endpoints.
type CategoriaHandler struct {
	uc     usecase.CategoriaUsecase
	logger *slog.Logger
}

// NewCategoriaHandler is the constructor for CategoriaHandler, injected by Fx.
func NewCategoriaHandler(uc usecase.CategoriaUsecase, logger *slog.Logger) *CategoriaHandler {
	return &CategoriaHandler{uc: uc, logger: logger}
}

// Create handles POST /categorias.
func (h *CategoriaHandler) Create(c echo.Context) error {
	var input *usecase.CategoriaInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid category payload")
	}
	if input == nil {
		input = &usecase.CategoriaInput{}
	}

	categoria, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, viewCategoria(categoria, links(c, categoriasPath)), "category created")
}

// Get handles GET /categorias/:id.
func (h *CategoriaHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	categoria, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewCategoria(categoria, links(c, categoriasPath)), "")
}

// List handles GET /categorias, bare or paged.
func (h *CategoriaHandler) List(c echo.Context) error {
	crit, err := critFromQuery(c, []string{"nome", "descricao"}, nil)
	if err != nil {
		return err
	}
	page, size, paged, err := paging(c)
	if err != nil {
		return err
	}

	b := links(c, categoriasPath)
	ctx := c.Request().Context()

	if !paged {
		categorias, err := h.uc.List(ctx, crit)
		if err != nil {
			return errors.WithStack(err)
		}
		vistas := make([]categoriaView, 0, len(categorias))
		for i := range categorias {
			vistas = append(vistas, viewCategoria(&categorias[i], b))
		}

		return response.Success(c, http.StatusOK, vistas, "")
	}

	categorias, total, err := h.uc.ListPaged(ctx, crit, page, size)
	if err != nil {
		return errors.WithStack(err)
	}
	vistas := make([]categoriaView, 0, len(categorias))
	for i := range categorias {
		vistas = append(vistas, viewCategoria(&categorias[i], b))
	}

	return response.Success(c, http.StatusOK, pagination.Paginate(vistas, total, page, size, b), "")
}

// Patch handles PATCH /categorias/:id.
func (h *CategoriaHandler) Patch(c echo.Context) error {
	return h.update(c, h.uc.Patch)
}

// Replace handles PUT /categorias/:id. The ID comes from the URL; a body
// carrying one is rejected.
func (h *CategoriaHandler) Replace(c echo.Context) error {
	return h.update(c, h.uc.Replace)
}

func (h *CategoriaHandler) update(c echo.Context, op func(ctx context.Context, id int64, in *usecase.CategoriaInput) (*entity.Categoria, error)) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.CategoriaInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid category payload")
	}
	if input == nil {
		input = &usecase.CategoriaInput{}
	}

	categoria, err := op(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewCategoria(categoria, links(c, categoriasPath)), "")
}

// Delete handles DELETE /categorias/:id.
func (h *CategoriaHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
