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

const usuariosPath = "/usuarios"

// UsuarioHandler holds dependencies for the account endpoints, including
// login.
type UsuarioHandler struct {
	uc     usecase.UsuarioUsecase
	logger *slog.Logger
}

// NewUsuarioHandler is the constructor for UsuarioHandler, injected by Fx.
func NewUsuarioHandler(uc usecase.UsuarioUsecase, logger *slog.Logger) *UsuarioHandler {
	return &UsuarioHandler{uc: uc, logger: logger}
}

// Create handles POST /usuarios.
func (h *UsuarioHandler) Create(c echo.Context) error {
	var input *usecase.UsuarioInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid user payload")
	}
	if input == nil {
		input = &usecase.UsuarioInput{}
	}

	usuario, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, viewUsuario(usuario, links(c, usuariosPath)), "user created")
}

// Get handles GET /usuarios/:id.
func (h *UsuarioHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	usuario, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewUsuario(usuario, links(c, usuariosPath)), "")
}

// List handles GET /usuarios, bare or paged. Soft-deleted accounts never
// appear.
func (h *UsuarioHandler) List(c echo.Context) error {
	crit, err := critFromQuery(c, []string{"nome", "email", "cidade", "uf"}, nil)
	if err != nil {
		return err
	}
	page, size, paged, err := paging(c)
	if err != nil {
		return err
	}

	b := links(c, usuariosPath)
	ctx := c.Request().Context()

	if !paged {
		usuarios, err := h.uc.List(ctx, crit)
		if err != nil {
			return errors.WithStack(err)
		}
		vistas := make([]usuarioView, 0, len(usuarios))
		for i := range usuarios {
			vistas = append(vistas, viewUsuario(&usuarios[i], b))
		}

		return response.Success(c, http.StatusOK, vistas, "")
	}

	usuarios, total, err := h.uc.ListPaged(ctx, crit, page, size)
	if err != nil {
		return errors.WithStack(err)
	}
	vistas := make([]usuarioView, 0, len(usuarios))
	for i := range usuarios {
		vistas = append(vistas, viewUsuario(&usuarios[i], b))
	}

	return response.Success(c, http.StatusOK, pagination.Paginate(vistas, total, page, size, b), "")
}

// Patch handles PATCH /usuarios/:id.
func (h *UsuarioHandler) Patch(c echo.Context) error {
	return h.update(c, h.uc.Patch)
}

// Replace handles PUT /usuarios/:id.
func (h *UsuarioHandler) Replace(c echo.Context) error {
	return h.update(c, h.uc.Replace)
}

func (h *UsuarioHandler) update(c echo.Context, op func(ctx context.Context, id int64, in *usecase.UsuarioInput) (*usecase.UsuarioOutput, error)) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UsuarioInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid user payload")
	}
	if input == nil {
		input = &usecase.UsuarioInput{}
	}

	usuario, err := op(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, viewUsuario(usuario, links(c, usuariosPath)), "")
}

// Delete handles DELETE /usuarios/:id (soft delete).
func (h *UsuarioHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// loginRequest is the request body of POST /login.
type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// Login handles POST /login.
func (h *UsuarioHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid login payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "corpo_invalido", "invalid login payload")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email: req.Email,
		Senha: req.Senha,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "login successful")
}
