package handler

import (
	"log/slog"
	"net/http"

	"precario/internal/delivery/http/response"
	"precario/internal/infra/cache"

	"github.com/labstack/echo/v4"
)

// AdminHandler exposes the administrative cache-eviction endpoints. The
// routes are JWT-guarded by the auth middleware.
type AdminHandler struct {
	store  *cache.Store
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(store *cache.Store, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{store: store, logger: logger}
}

// EvictAll handles DELETE /admin/cache.
func (h *AdminHandler) EvictAll(c echo.Context) error {
	h.store.EvictAll()
	h.logger.Info("cache fully evicted by admin request")

	return c.NoContent(http.StatusNoContent)
}

// EvictCategoria handles DELETE /admin/cache/:categoria. Unknown category
// names are rejected.
func (h *AdminHandler) EvictCategoria(c echo.Context) error {
	categoria := cache.Categoria(c.Param("categoria"))
	if !cache.Known(categoria) {
		return response.NotFound(c, "categoria_cache_desconhecida", "unknown cache category")
	}

	h.store.Evict(categoria)
	h.logger.Info("cache category evicted by admin request", slog.String("categoria", string(categoria)))

	return c.NoContent(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
