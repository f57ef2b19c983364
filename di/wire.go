//go:build wireinject
// +build wireinject

package di

import (
	"chrono/config"
	"chrono/infras/jwt"
	"chrono/infras/kafka"
	"chrono/infras/otel"
	"chrono/infras/postgres"
	"chrono/infras/redis"
	"chrono/shared/cache"
	"chrono/transport/http"
	"chrono/transport/http/middleware"
	"chrono/transport/http/router"

	eventRepository "chrono/internal/domains/event/repository"
	eventService "chrono/internal/domains/event/service"
	eventHandler "chrono/internal/handlers/event"

	userRepository "chrono/internal/domains/user/repository"
	userService "chrono/internal/domains/user/service"
	userHandler "chrono/internal/handlers/user"

	authService "chrono/internal/domains/auth/service"
	authHandler "chrono/internal/handlers/auth"

	timezoneHandler "chrono/internal/handlers/timezone"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	eventDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	eventHandler.New,
	userHandler.New,
	authHandler.New,
	timezoneHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
