//go:build wireinject
// +build wireinject

package di

import (
	"pawsit/config"
	"pawsit/infras/kafka"
	"pawsit/infras/otel"
	"pawsit/infras/postgres"
	"pawsit/infras/redis"
	"pawsit/infras/s3"
	assignmentRepository "pawsit/internal/domains/assignment/repository"
	assignmentService "pawsit/internal/domains/assignment/service"
	bookingRepository "pawsit/internal/domains/booking/repository"
	bookingService "pawsit/internal/domains/booking/service"
	lifecycleService "pawsit/internal/domains/lifecycle/service"
	notificationRepository "pawsit/internal/domains/notification/repository"
	notificationService "pawsit/internal/domains/notification/service"
	petRepository "pawsit/internal/domains/pet/repository"
	sitterRepository "pawsit/internal/domains/sitter/repository"
	sitterService "pawsit/internal/domains/sitter/service"
	userRepository "pawsit/internal/domains/user/repository"
	visitRepository "pawsit/internal/domains/visit/repository"
	visitService "pawsit/internal/domains/visit/service"
	"pawsit/internal/events/worker"
	assignmentHandler "pawsit/internal/handlers/assignment"
	bookingHandler "pawsit/internal/handlers/booking"
	paymentHandler "pawsit/internal/handlers/payment"
	sitterHandler "pawsit/internal/handlers/sitter"
	visitHandler "pawsit/internal/handlers/visit"
	"pawsit/shared/cache"
	transportHTTP "pawsit/transport/http"
	"pawsit/transport/http/router"

	"github.com/google/wire"
)

var infrastructure = wire.NewSet(
	config.Get,
	otel.New,
	postgres.New,
	redis.New,
	cache.NewRedisCache,
	kafka.New,
	s3.New,
	wire.Bind(new(assignmentService.TxRunner), new(*postgres.Connection)),
)

var repositories = wire.NewSet(
	assignmentRepository.New,
	assignmentRepository.NewTraining,
	bookingRepository.New,
	notificationRepository.New,
	petRepository.New,
	sitterRepository.New,
	sitterRepository.NewAvailability,
	userRepository.New,
	visitRepository.New,
)

var services = wire.NewSet(
	assignmentService.New,
	bookingService.New,
	lifecycleService.New,
	notificationService.New,
	sitterService.New,
	visitService.New,
)

var handlers = wire.NewSet(
	assignmentHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	sitterHandler.New,
	visitHandler.New,
	wire.Struct(new(router.DomainHandlers), "*"),
)

func InitializeApp() *App {
	wire.Build(
		infrastructure,
		repositories,
		services,
		handlers,
		router.New,
		transportHTTP.New,
		worker.New,
		NewApp,
	)

	return nil
}
