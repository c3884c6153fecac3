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

const ramosPath = "/ramos"

// RamoHandler holds dependencies for the branch endpoints.
type RamoHandler struct {
	uc     usecase.RamoUsecase
	logger *slog.Logger
}

// NewRamoHandler is the constructor for RamoHandler, injected by Fx.
func NewRamoHandler(uc usecase.RamoUsecase, logger *slog.Logger) *RamoHandler {
	return &RamoHandler{uc: uc, logger: logger}
}

// Create handles POST /ramos.
func (h *RamoHandler) Create(c echo.Context) error {
	var input *usecase.RamoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid branch payload")
	}
	if input == nil {
		input = &usecase.RamoInput{}
	}

	ramo, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, viewRamo(ramo, links(c, ramosPath)), "branch created")
}

// Get handles GET /ramos/:id.
func (h *RamoHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ramo, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewRamo(ramo, links(c, ramosPath)), "")
}

// List handles GET /ramos, bare or paged.
func (h *RamoHandler) List(c echo.Context) error {
	crit, err := critFromQuery(c, []string{"nome", "descricao"}, nil)
	if err != nil {
		return err
	}
	page, size, paged, err := paging(c)
	if err != nil {
		return err
	}

	b := links(c, ramosPath)
	ctx := c.Request().Context()

	if !paged {
		ramos, err := h.uc.List(ctx, crit)
		if err != nil {
			return errors.WithStack(err)
		}
		vistas := make([]ramoView, 0, len(ramos))
		for i := range ramos {
			vistas = append(vistas, viewRamo(&ramos[i], b))
		}

		return response.Success(c, http.StatusOK, vistas, "")
	}

	ramos, total, err := h.uc.ListPaged(ctx, crit, page, size)
	if err != nil {
		return errors.WithStack(err)
	}
	vistas := make([]ramoView, 0, len(ramos))
	for i := range ramos {
		vistas = append(vistas, viewRamo(&ramos[i], b))
	}

	return response.Success(c, http.StatusOK, pagination.Paginate(vistas, total, page, size, b), "")
}

// Patch handles PATCH /ramos/:id.
func (h *RamoHandler) Patch(c echo.Context) error {
	return h.update(c, h.uc.Patch)
}

// Replace handles PUT /ramos/:id.
func (h *RamoHandler) Replace(c echo.Context) error {
	return h.update(c, h.uc.Replace)
}

func (h *RamoHandler) update(c echo.Context, op func(ctx context.Context, id int64, in *usecase.RamoInput) (*entity.Ramo, error)) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.RamoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid branch payload")
	}
	if input == nil {
		input = &usecase.RamoInput{}
	}

	ramo, err := op(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewRamo(ramo, links(c, ramosPath)), "")
}

// Delete handles DELETE /ramos/:id.
func (h *RamoHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
