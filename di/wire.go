//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"salonbooking/config"
	"salonbooking/infras/baas"
	"salonbooking/infras/jwt"
	"salonbooking/infras/metrics"
	"salonbooking/infras/otel"
	"salonbooking/infras/redis"
	"salonbooking/permissions"
	"salonbooking/shared/cache"
	"salonbooking/shared/clock"
	"salonbooking/shared/identity"
	"salonbooking/shared/store"
	"salonbooking/transport/http"
	"salonbooking/transport/http/middleware"
	"salonbooking/transport/http/router"

	appointmentRepository "salonbooking/internal/domains/appointment/repository"
	appointmentService "salonbooking/internal/domains/appointment/service"
	availabilityRepository "salonbooking/internal/domains/availability/repository"
	availabilityService "salonbooking/internal/domains/availability/service"
	bookingRepository "salonbooking/internal/domains/booking/repository"
	bookingService "salonbooking/internal/domains/booking/service"
	catalogRepository "salonbooking/internal/domains/catalog/repository"
	catalogService "salonbooking/internal/domains/catalog/service"
	contactRepository "salonbooking/internal/domains/contact/repository"
	contactService "salonbooking/internal/domains/contact/service"
	flowRepository "salonbooking/internal/domains/flow/repository"
	flowService "salonbooking/internal/domains/flow/service"

	appointmentHandler "salonbooking/internal/handlers/appointment"
	bookingHandler "salonbooking/internal/handlers/booking"
	catalogHandler "salonbooking/internal/handlers/catalog"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	metrics.New,
	baas.New,
	sessionRefresher,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.NewRealClock,
	store.NewSessionStore,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	flowRepository.New,
	flowService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	availabilityDomain,
	contactDomain,
	appointmentDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	bookingHandler.New,
	appointmentHandler.New,
	router.New,
)

func sessionRefresher(client baas.Client) identity.Refresher {
	return client
}

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
