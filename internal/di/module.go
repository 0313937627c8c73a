package di

import (
	"go.uber.org/fx"

	"github.com/feastline/orderd/internal/adapter/identity"
	"github.com/feastline/orderd/internal/app"
	"github.com/feastline/orderd/internal/config"
	"github.com/feastline/orderd/internal/logger"
	"github.com/feastline/orderd/internal/server/http/handlers"
	"github.com/feastline/orderd/internal/server/http/router"
	"github.com/feastline/orderd/internal/storage"
	"github.com/feastline/orderd/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		identity.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(facade *app.DeliveryFacade) handlers.DeliveryFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
