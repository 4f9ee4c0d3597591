//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/internal/workers/rollover"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/google/wire"

	authService "frontdesk/internal/domains/auth/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	customerRepository "frontdesk/internal/domains/customer/repository"
	dashboardService "frontdesk/internal/domains/dashboard/service"
	healthService "frontdesk/internal/domains/health/service"
	housekeepingRepository "frontdesk/internal/domains/housekeeping/repository"
	housekeepingService "frontdesk/internal/domains/housekeeping/service"
	receiptService "frontdesk/internal/domains/receipt/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	userRepository "frontdesk/internal/domains/user/repository"

	authHandler "frontdesk/internal/handlers/auth"
	bookingHandler "frontdesk/internal/handlers/booking"
	dashboardHandler "frontdesk/internal/handlers/dashboard"
	healthHandler "frontdesk/internal/handlers/health"
	housekeepingHandler "frontdesk/internal/handlers/housekeeping"
	receiptHandler "frontdesk/internal/handlers/receipt"
	roomHandler "frontdesk/internal/handlers/room"
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
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	roomRepository.New,
	customerRepository.New,
	bookingRepository.New,
	housekeepingRepository.New,
	userRepository.New,
)

var domains = wire.NewSet(
	roomService.New,
	bookingService.New,
	housekeepingService.New,
	dashboardService.New,
	receiptService.New,
	authService.New,
	healthService.New,
	wire.Bind(new(healthService.Pinger), new(*postgres.Connection)),
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	housekeepingHandler.New,
	dashboardHandler.New,
	receiptHandler.New,
	router.New,
)

func InitializeApplication() *Application {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
		rollover.New,
		wire.Struct(new(Application), "*"),
	)

	return &Application{}
}

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeProvisioner() *Provisioner {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		jwt.New,
		sharedHelpers,
		roomRepository.New,
		bookingRepository.New,
		housekeepingRepository.New,
		userRepository.New,
		roomService.New,
		authService.New,
		wire.Struct(new(Provisioner), "*"),
	)

	return &Provisioner{}
}
