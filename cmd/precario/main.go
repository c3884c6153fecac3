package main

import (
	"context"
	"log/slog"
	"os"

	"precario/config"
	"precario/internal/delivery"
	"precario/internal/delivery/http"
	"precario/internal/delivery/http/middleware"
	"precario/internal/delivery/http/router/handler"
	"precario/internal/infra/auth"
	"precario/internal/infra/cache"
	logs "precario/internal/infra/log"
	"precario/internal/infra/persistence/postgres"
	"precario/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCategoriaService,
			impl.NewRamoService,
			impl.NewMercadoService,
			impl.NewProdutoService,
			impl.NewEstoqueService,
			impl.NewSugestaoService,
			impl.NewUsuarioService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCategoriaHandler,
			handler.NewRamoHandler,
			handler.NewMercadoHandler,
			handler.NewProdutoHandler,
			handler.NewEstoqueHandler,
			handler.NewSugestaoHandler,
			handler.NewUsuarioHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
