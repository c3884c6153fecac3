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

const produtosPath = "/produtos"

// ProdutoHandler holds dependencies for the product endpoints, including
// the aggregated price survey.
type ProdutoHandler struct {
	uc     usecase.ProdutoUsecase
	logger *slog.Logger
}

// NewProdutoHandler is the constructor for ProdutoHandler, injected by Fx.
func NewProdutoHandler(uc usecase.ProdutoUsecase, logger *slog.Logger) *ProdutoHandler {
	return &ProdutoHandler{uc: uc, logger: logger}
}

// Create handles POST /produtos.
func (h *ProdutoHandler) Create(c echo.Context) error {
	var input *usecase.ProdutoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid product payload")
	}
	if input == nil {
		input = &usecase.ProdutoInput{}
	}

	produto, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, viewProduto(produto, links(c, produtosPath)), "product created")
}

// Get handles GET /produtos/:id.
func (h *ProdutoHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	produto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewProduto(produto, links(c, produtosPath)), "")
}

// List handles GET /produtos, bare or paged.
func (h *ProdutoHandler) List(c echo.Context) error {
	crit, err := critFromQuery(c,
		[]string{"nome", "marca", "tamanho", "cor"},
		[]string{"categoria_id", "criado_por"})
	if err != nil {
		return err
	}
	page, size, paged, err := paging(c)
	if err != nil {
		return err
	}

	b := links(c, produtosPath)
	ctx := c.Request().Context()

	if !paged {
		produtos, err := h.uc.List(ctx, crit)
		if err != nil {
			return errors.WithStack(err)
		}
		vistas := make([]produtoView, 0, len(produtos))
		for i := range produtos {
			vistas = append(vistas, viewProduto(&produtos[i], b))
		}

		return response.Success(c, http.StatusOK, vistas, "")
	}

	produtos, total, err := h.uc.ListPaged(ctx, crit, page, size)
	if err != nil {
		return errors.WithStack(err)
	}
	vistas := make([]produtoView, 0, len(produtos))
	for i := range produtos {
		vistas = append(vistas, viewProduto(&produtos[i], b))
	}

	return response.Success(c, http.StatusOK, pagination.Paginate(vistas, total, page, size, b), "")
}

// Levantamento handles GET /produtos/:id/levantamento, the aggregated price
// survey of a product across every market tracking it.
func (h *ProdutoHandler) Levantamento(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	levantamento, err := h.uc.Levantamento(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, levantamento, "")
}

// Patch handles PATCH /produtos/:id.
func (h *ProdutoHandler) Patch(c echo.Context) error {
	return h.update(c, h.uc.Patch)
}

// Replace handles PUT /produtos/:id.
func (h *ProdutoHandler) Replace(c echo.Context) error {
	return h.update(c, h.uc.Replace)
}

func (h *ProdutoHandler) update(c echo.Context, op func(ctx context.Context, id int64, in *usecase.ProdutoInput) (*entity.Produto, error)) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.ProdutoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid product payload")
	}
	if input == nil {
		input = &usecase.ProdutoInput{}
	}

	produto, err := op(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewProduto(produto, links(c, produtosPath)), "")
}

// Delete handles DELETE /produtos/:id.
func (h *ProdutoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
