package di

import (
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/adapter/recovery"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/app"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/config"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/logger"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/pkg/auth"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/server/http/handlers"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/server/http/router"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/storage/postgres"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		recovery.Module,
		usecase.Module,
		fx.Provide(func(client recovery.Client) usecase.RecoveryService { return client }),
		fx.Provide(func(facade *app.CommerceFacade) handlers.CommerceFacade { return facade }),
		fx.Provide(func(storage *postgres.Storage) handlers.Pinger { return storage }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
