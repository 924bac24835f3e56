//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"tutorials/config"
	"tutorials/infras/otel"
	"tutorials/infras/postgres"
	"tutorials/infras/redis"
	tutorialRepository "tutorials/internal/domains/tutorial/repository"
	tutorialService "tutorials/internal/domains/tutorial/service"
	tutorialHandler "tutorials/internal/handlers/tutorial"
	"tutorials/shared/cache"
	"tutorials/transport/http"
	"tutorials/transport/http/middleware"
	"tutorials/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	providePinger,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var tutorialDomain = wire.NewSet(
	tutorialRepository.New,
	tutorialService.New,
)

var domains = wire.NewSet(
	tutorialDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	tutorialHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}
