package di

import (
	"github.com/ovenside/storefront/internal/app"
	"github.com/ovenside/storefront/internal/config"
	"github.com/ovenside/storefront/internal/logger"
	"github.com/ovenside/storefront/internal/pkg/auth"
	"github.com/ovenside/storefront/internal/schedule"
	"github.com/ovenside/storefront/internal/server/http/handlers"
	"github.com/ovenside/storefront/internal/server/http/router"
	"github.com/ovenside/storefront/internal/storage/postgres"
	"github.com/ovenside/storefront/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		schedule.Module,
		usecase.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
