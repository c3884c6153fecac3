// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"precario/internal/delivery/http/middleware"
	"precario/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CategoriaHandler *handler.CategoriaHandler
	RamoHandler      *handler.RamoHandler
	MercadoHandler   *handler.MercadoHandler
	ProdutoHandler   *handler.ProdutoHandler
	EstoqueHandler   *handler.EstoqueHandler
	SugestaoHandler  *handler.SugestaoHandler
	UsuarioHandler   *handler.UsuarioHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router. Fx will inject the required
// handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Authentication
	e.POST("/login", r.params.UsuarioHandler.Login)

	registrarRecurso(e, "/categorias", recurso{
		create:  r.params.CategoriaHandler.Create,
		get:     r.params.CategoriaHandler.Get,
		list:    r.params.CategoriaHandler.List,
		patch:   r.params.CategoriaHandler.Patch,
		replace: r.params.CategoriaHandler.Replace,
		remove:  r.params.CategoriaHandler.Delete,
	})
	registrarRecurso(e, "/ramos", recurso{
		create:  r.params.RamoHandler.Create,
		get:     r.params.RamoHandler.Get,
		list:    r.params.RamoHandler.List,
		patch:   r.params.RamoHandler.Patch,
		replace: r.params.RamoHandler.Replace,
		remove:  r.params.RamoHandler.Delete,
	})
	registrarRecurso(e, "/mercados", recurso{
		create:  r.params.MercadoHandler.Create,
		get:     r.params.MercadoHandler.Get,
		list:    r.params.MercadoHandler.List,
		patch:   r.params.MercadoHandler.Patch,
		replace: r.params.MercadoHandler.Replace,
		remove:  r.params.MercadoHandler.Delete,
	})
	registrarRecurso(e, "/produtos", recurso{
		create:  r.params.ProdutoHandler.Create,
		get:     r.params.ProdutoHandler.Get,
		list:    r.params.ProdutoHandler.List,
		patch:   r.params.ProdutoHandler.Patch,
		replace: r.params.ProdutoHandler.Replace,
		remove:  r.params.ProdutoHandler.Delete,
	})
	e.GET("/produtos/:id/levantamento", r.params.ProdutoHandler.Levantamento)

	registrarRecurso(e, "/estoques", recurso{
		create:  r.params.EstoqueHandler.Create,
		get:     r.params.EstoqueHandler.Get,
		list:    r.params.EstoqueHandler.List,
		patch:   r.params.EstoqueHandler.Patch,
		replace: r.params.EstoqueHandler.Replace,
		remove:  r.params.EstoqueHandler.Delete,
	})
	registrarRecurso(e, "/sugestoes", recurso{
		create:  r.params.SugestaoHandler.Create,
		get:     r.params.SugestaoHandler.Get,
		list:    r.params.SugestaoHandler.List,
		patch:   r.params.SugestaoHandler.Patch,
		replace: r.params.SugestaoHandler.Replace,
		remove:  r.params.SugestaoHandler.Delete,
	})
	registrarRecurso(e, "/usuarios", recurso{
		create:  r.params.UsuarioHandler.Create,
		get:     r.params.UsuarioHandler.Get,
		list:    r.params.UsuarioHandler.List,
		patch:   r.params.UsuarioHandler.Patch,
		replace: r.params.UsuarioHandler.Replace,
		remove:  r.params.UsuarioHandler.Delete,
	})

	// Administrative routes require a valid access token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		adminGroup.DELETE("/cache", r.params.AdminHandler.EvictAll)
		adminGroup.DELETE("/cache/:categoria", r.params.AdminHandler.EvictCategoria)
	}
}

// recurso bundles the six CRUD handlers of one collection.
type recurso struct {
	create  echo.HandlerFunc
	get     echo.HandlerFunc
	list    echo.HandlerFunc
	patch   echo.HandlerFunc
	replace echo.HandlerFunc
	remove  echo.HandlerFunc
}

func registrarRecurso(e *echo.Echo, path string, h recurso) {
	e.POST(path, h.create)
	e.GET(path, h.list)
	e.GET(path+"/:id", h.get)
	e.PATCH(path+"/:id", h.patch)
	e.PUT(path+"/:id", h.replace)
	e.DELETE(path+"/:id", h.remove)
}
