//go:build wireinject
// +build wireinject

package di

import (
	"villadesk/config"
	"villadesk/infras/jwt"
	"villadesk/infras/kafka"
	"villadesk/infras/otel"
	"villadesk/infras/postgres"
	"villadesk/infras/redis"
	"villadesk/shared/cache"
	"villadesk/transport/http"
	"villadesk/transport/http/middleware"
	"villadesk/transport/http/router"

	calendarRepository "villadesk/internal/domains/calendar/repository"
	calendarService "villadesk/internal/domains/calendar/service"
	customerRepository "villadesk/internal/domains/customer/repository"
	customerService "villadesk/internal/domains/customer/service"
	pricingRepository "villadesk/internal/domains/pricing/repository"
	pricingService "villadesk/internal/domains/pricing/service"
	regionRepository "villadesk/internal/domains/region/repository"
	regionService "villadesk/internal/domains/region/service"
	reservationRepository "villadesk/internal/domains/reservation/repository"
	reservationService "villadesk/internal/domains/reservation/service"
	seoRepository "villadesk/internal/domains/seo/repository"
	seoService "villadesk/internal/domains/seo/service"
	tagRepository "villadesk/internal/domains/tag/repository"
	tagService "villadesk/internal/domains/tag/service"
	villaRepository "villadesk/internal/domains/villa/repository"
	villaService "villadesk/internal/domains/villa/service"

	calendarHandler "villadesk/internal/handlers/calendar"
	customerHandler "villadesk/internal/handlers/customer"
	pricingHandler "villadesk/internal/handlers/pricing"
	regionHandler "villadesk/internal/handlers/region"
	reservationHandler "villadesk/internal/handlers/reservation"
	seoHandler "villadesk/internal/handlers/seo"
	tagHandler "villadesk/internal/handlers/tag"
	villaHandler "villadesk/internal/handlers/villa"

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
	cache.NewLocker,
)

var villaDomain = wire.NewSet(
	villaRepository.New,
	villaService.New,
)

var regionDomain = wire.NewSet(
	regionRepository.New,
	regionService.New,
)

var tagDomain = wire.NewSet(
	tagRepository.New,
	tagService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var seoDomain = wire.NewSet(
	seoRepository.New,
	seoService.New,
)

var calendarDomain = wire.NewSet(
	calendarRepository.New,
	calendarService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	villaDomain,
	regionDomain,
	tagDomain,
	customerDomain,
	seoDomain,
	calendarDomain,
	pricingDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	villaHandler.New,
	regionHandler.New,
	tagHandler.New,
	customerHandler.New,
	seoHandler.New,
	calendarHandler.New,
	pricingHandler.New,
	reservationHandler.New,
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
