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

const mercadosPath = "/mercados"

// MercadoHandler holds dependencies for the market endpoints.
type MercadoHandler struct {
	uc     usecase.MercadoUsecase
	logger *slog.Logger
}

// NewMercadoHandler is the constructor for MercadoHandler, injected by Fx.
func NewMercadoHandler(uc usecase.MercadoUsecase, logger *slog.Logger) *MercadoHandler {
	return &MercadoHandler{uc: uc, logger: logger}
}

// Create handles POST /mercados.
func (h *MercadoHandler) Create(c echo.Context) error {
	var input *usecase.MercadoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid market payload")
	}
	if input == nil {
		input = &usecase.MercadoInput{}
	}

	mercado, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, viewMercado(mercado, links(c, mercadosPath)), "market created")
}

// Get handles GET /mercados/:id.
func (h *MercadoHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	mercado, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewMercado(mercado, links(c, mercadosPath)), "")
}

// List handles GET /mercados, bare or paged.
func (h *MercadoHandler) List(c echo.Context) error {
	crit, err := critFromQuery(c,
		[]string{"nome", "logradouro", "bairro", "cidade", "uf", "cep"},
		[]string{"ramo_id", "criado_por"})
	if err != nil {
		return err
	}
	page, size, paged, err := paging(c)
	if err != nil {
		return err
	}

	b := links(c, mercadosPath)
	ctx := c.Request().Context()

	if !paged {
		mercados, err := h.uc.List(ctx, crit)
		if err != nil {
			return errors.WithStack(err)
		}
		vistas := make([]mercadoView, 0, len(mercados))
		for i := range mercados {
			vistas = append(vistas, viewMercado(&mercados[i], b))
		}

		return response.Success(c, http.StatusOK, vistas, "")
	}

	mercados, total, err := h.uc.ListPaged(ctx, crit, page, size)
	if err != nil {
		return errors.WithStack(err)
	}
	vistas := make([]mercadoView, 0, len(mercados))
	for i := range mercados {
		vistas = append(vistas, viewMercado(&mercados[i], b))
	}

	return response.Success(c, http.StatusOK, pagination.Paginate(vistas, total, page, size, b), "")
}

// Patch handles PATCH /mercados/:id.
func (h *MercadoHandler) Patch(c echo.Context) error {
	return h.update(c, h.uc.Patch)
}

// Replace handles PUT /mercados/:id.
func (h *MercadoHandler) Replace(c echo.Context) error {
	return h.update(c, h.uc.Replace)
}

func (h *MercadoHandler) update(c echo.Context, op func(ctx context.Context, id int64, in *usecase.MercadoInput) (*entity.Mercado, error)) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.MercadoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid market payload")
	}
	if input == nil {
		input = &usecase.MercadoInput{}
	}

	mercado, err := op(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewMercado(mercado, links(c, mercadosPath)), "")
}

// Delete handles DELETE /mercados/:id.
func (h *MercadoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
