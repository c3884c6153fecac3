package handler

import (
	"context"
	"log/slog"
	"net/http"

	"precario/internal/delivery/http/response"
	"precario/internal/pagination"
	"precario/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const sugestoesPath = "/sugestoes"

// SugestaoHandler holds dependencies for the price-suggestion endpoints.
type SugestaoHandler struct {
	uc     usecase.SugestaoUsecase
	logger *slog.Logger
}

// NewSugestaoHandler is the constructor for SugestaoHandler, injected by Fx.
func NewSugestaoHandler(uc usecase.SugestaoUsecase, logger *slog.Logger) *SugestaoHandler {
	return &SugestaoHandler{uc: uc, logger: logger}
}

// Create handles POST /sugestoes.
func (h *SugestaoHandler) Create(c echo.Context) error {
	var input *usecase.SugestaoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid suggestion payload")
	}
	if input == nil {
		input = &usecase.SugestaoInput{}
	}

	sugestao, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, viewSugestao(sugestao, links(c, sugestoesPath)), "suggestion created")
}

// Get handles GET /sugestoes/:id.
func (h *SugestaoHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	sugestao, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewSugestao(sugestao, links(c, sugestoesPath)), "")
}

// List handles GET /sugestoes, bare or paged.
func (h *SugestaoHandler) List(c echo.Context) error {
	crit, err := critFromQuery(c, nil, []string{"estoque_id", "criado_por"})
	if err != nil {
		return err
	}
	page, size, paged, err := paging(c)
	if err != nil {
		return err
	}

	b := links(c, sugestoesPath)
	ctx := c.Request().Context()

	if !paged {
		sugestoes, err := h.uc.List(ctx, crit)
		if err != nil {
			return errors.WithStack(err)
		}
		vistas := make([]sugestaoView, 0, len(sugestoes))
		for i := range sugestoes {
			vistas = append(vistas, viewSugestao(&sugestoes[i], b))
		}

		return response.Success(c, http.StatusOK, vistas, "")
	}

	sugestoes, total, err := h.uc.ListPaged(ctx, crit, page, size)
	if err != nil {
		return errors.WithStack(err)
	}
	vistas := make([]sugestaoView, 0, len(sugestoes))
	for i := range sugestoes {
		vistas = append(vistas, viewSugestao(&sugestoes[i], b))
	}

	return response.Success(c, http.StatusOK, pagination.Paginate(vistas, total, page, size, b), "")
}

// Patch handles PATCH /sugestoes/:id.
func (h *SugestaoHandler) Patch(c echo.Context) error {
	return h.update(c, h.uc.Patch)
}

// Replace handles PUT /sugestoes/:id.
func (h *SugestaoHandler) Replace(c echo.Context) error {
	return h.update(c, h.uc.Replace)
}

func (h *SugestaoHandler) update(c echo.Context, op func(ctx context.Context, id int64, in *usecase.SugestaoInput) (*usecase.SugestaoOutput, error)) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.SugestaoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid suggestion payload")
	}
	if input == nil {
		input = &usecase.SugestaoInput{}
	}

	sugestao, err := op(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewSugestao(sugestao, links(c, sugestoesPath)), "")
}

// Delete handles DELETE /sugestoes/:id.
func (h *SugestaoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
