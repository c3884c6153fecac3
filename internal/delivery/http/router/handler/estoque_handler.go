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

const estoquesPath = "/estoques"

// EstoqueHandler holds dependencies for the stock-entry endpoints.
type EstoqueHandler struct {
	uc     usecase.EstoqueUsecase
	logger *slog.Logger
}

// NewEstoqueHandler is the constructor for EstoqueHandler, injected by Fx.
func NewEstoqueHandler(uc usecase.EstoqueUsecase, logger *slog.Logger) *EstoqueHandler {
	return &EstoqueHandler{uc: uc, logger: logger}
}

// Create handles POST /estoques.
func (h *EstoqueHandler) Create(c echo.Context) error {
	var input *usecase.EstoqueInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid stock entry payload")
	}
	if input == nil {
		input = &usecase.EstoqueInput{}
	}

	estoque, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, viewEstoque(estoque, links(c, estoquesPath)), "stock entry created")
}

// Get handles GET /estoques/:id.
func (h *EstoqueHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	estoque, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewEstoque(estoque, links(c, estoquesPath)), "")
}

// List handles GET /estoques, bare or paged.
func (h *EstoqueHandler) List(c echo.Context) error {
	crit, err := critFromQuery(c, nil, []string{"produto_id", "mercado_id", "criado_por"})
	if err != nil {
		return err
	}
	page, size, paged, err := paging(c)
	if err != nil {
		return err
	}

	b := links(c, estoquesPath)
	ctx := c.Request().Context()

	if !paged {
		estoques, err := h.uc.List(ctx, crit)
		if err != nil {
			return errors.WithStack(err)
		}
		vistas := make([]estoqueView, 0, len(estoques))
		for i := range estoques {
			vistas = append(vistas, viewEstoque(&estoques[i], b))
		}

		return response.Success(c, http.StatusOK, vistas, "")
	}

	estoques, total, err := h.uc.ListPaged(ctx, crit, page, size)
	if err != nil {
		return errors.WithStack(err)
	}
	vistas := make([]estoqueView, 0, len(estoques))
	for i := range estoques {
		vistas = append(vistas, viewEstoque(&estoques[i], b))
	}

	return response.Success(c, http.StatusOK, pagination.Paginate(vistas, total, page, size, b), "")
}

// Patch handles PATCH /estoques/:id.
func (h *EstoqueHandler) Patch(c echo.Context) error {
	return h.update(c, h.uc.Patch)
}

// Replace handles PUT /estoques/:id.
func (h *EstoqueHandler) Replace(c echo.Context) error {
	return h.update(c, h.uc.Replace)
}

func (h *EstoqueHandler) update(c echo.Context, op func(ctx context.Context, id int64, in *usecase.EstoqueInput) (*entity.Estoque, error)) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.EstoqueInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid stock entry payload")
	}
	if input == nil {
		input = &usecase.EstoqueInput{}
	}

	estoque, err := op(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewEstoque(estoque, links(c, estoquesPath)), "")
}

// Delete handles DELETE /estoques/:id.
func (h *EstoqueHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
