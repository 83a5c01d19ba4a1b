//go:build wireinject
// +build wireinject

package di

import (
	"loungepass/config"
	"loungepass/infras/jwt"
	"loungepass/infras/kafka"
	"loungepass/infras/otel"
	"loungepass/infras/postgres"
	"loungepass/infras/redis"
	"loungepass/infras/s3"
	"loungepass/shared/cache"
	"loungepass/transport/http"
	"loungepass/transport/http/middleware"
	"loungepass/transport/http/router"

	airportRepository "loungepass/internal/domains/airport/repository"
	airportService "loungepass/internal/domains/airport/service"
	bookingRepository "loungepass/internal/domains/booking/repository"
	bookingService "loungepass/internal/domains/booking/service"
	draftService "loungepass/internal/domains/draft/service"
	flowService "loungepass/internal/domains/flow/service"
	loungeRepository "loungepass/internal/domains/lounge/repository"
	loungeService "loungepass/internal/domains/lounge/service"
	sessionService "loungepass/internal/domains/session/service"

	airportHandler "loungepass/internal/handlers/airport"
	bookingHandler "loungepass/internal/handlers/booking"
	loungeHandler "loungepass/internal/handlers/lounge"
	navigationHandler "loungepass/internal/handlers/navigation"
	sessionHandler "loungepass/internal/handlers/session"

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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var airportDomain = wire.NewSet(
	airportRepository.New,
	airportService.New,
)

var loungeDomain = wire.NewSet(
	loungeRepository.New,
	loungeService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	draftService.New,
)

var flowDomain = wire.NewSet(
	flowService.New,
	sessionService.New,
)

var domains = wire.NewSet(
	airportDomain,
	loungeDomain,
	bookingDomain,
	flowDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	airportHandler.New,
	loungeHandler.New,
	bookingHandler.New,
	navigationHandler.New,
	sessionHandler.New,
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
