//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"service/internal/handlers/rest/pickup_accept_post"
	"service/internal/handlers/rest/pickup_complete_post"
	"service/internal/handlers/rest/pickup_delete"
	"service/internal/handlers/rest/pickup_field_put"
	"service/internal/handlers/rest/pickup_get"
	"service/internal/handlers/rest/pickup_post"
	"service/internal/handlers/rest/pickup_put"
	"service/internal/handlers/rest/pickup_start_post"
	"service/internal/handlers/rest/pickup_unaccept_post"
	"service/internal/handlers/rest/pickups_get"
	"service/internal/handlers/rest/profile_get"
	"service/internal/handlers/tasks/acceptance_release"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/material_catalog"

	pickupRepo "service/internal/repository/pickup"
	profileRepo "service/internal/repository/profile"
	pickupService "service/internal/service/pickup"
	profileService "service/internal/service/profile"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReleaseInterval time.Duration
)

type Application struct {
	ServicePickup     ServicePickup
	ServiceProfile    ServiceProfile
	BackgroundWorkers *background.Worker
}

type ServicePickup interface {
	pickup_post.Service
	pickup_get.Service
	pickups_get.Service
	pickup_put.Service
	pickup_field_put.Service
	pickup_accept_post.Service
	pickup_start_post.Service
	pickup_unaccept_post.Service
	pickup_complete_post.Service
	pickup_delete.Service
}

type ServiceProfile interface {
	profile_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReleaseInterval,

		providePickupRepository,
		provideProfileRepository,

		provideServiceProfile,
		provideServicePickup,
		material_catalog.New,

		provideAcceptanceReleaseTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServicePickup), new(*pickupService.Pickup)),
		wire.Bind(new(ServiceProfile), new(*profileService.Profile)),

		wire.Bind(new(pickupService.Repository), new(*pickupRepo.Repository)),
		wire.Bind(new(profileService.Repository), new(*profileRepo.Repository)),
		wire.Bind(new(pickupService.ProfileService), new(*profileService.Profile)),
		wire.Bind(new(pickupService.Catalog), new(*material_catalog.Catalog)),

		wire.Bind(new(pickupService.TxManager), new(*tx.Manager)),
		wire.Bind(new(profileService.TxManager), new(*tx.Manager)),

		wire.Bind(new(acceptance_release.Service), new(*pickupService.Pickup)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PickupService *pickupService.Pickup
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-pickup-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		providePickupRepository,
		provideProfileRepository,

		provideServiceProfile,
		provideServicePickup,
		material_catalog.New,

		wire.Bind(new(pickupService.Repository), new(*pickupRepo.Repository)),
		wire.Bind(new(profileService.Repository), new(*profileRepo.Repository)),
		wire.Bind(new(pickupService.ProfileService), new(*profileService.Profile)),
		wire.Bind(new(pickupService.Catalog), new(*material_catalog.Catalog)),

		wire.Bind(new(pickupService.TxManager), new(*tx.Manager)),
		wire.Bind(new(profileService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func providePickupRepository(querier *querier.Querier) *pickupRepo.Repository {
	return pickupRepo.New(querier)
}

func provideProfileRepository(querier *querier.Querier) *profileRepo.Repository {
	return profileRepo.New(querier)
}

func provideServiceProfile(
	repository profileService.Repository,
	txManager profileService.TxManager,
) *profileService.Profile {
	return profileService.New(repository, txManager)
}

func provideServicePickup(
	repository pickupService.Repository,
	profiles pickupService.ProfileService,
	catalog pickupService.Catalog,
	txManager pickupService.TxManager,
) *pickupService.Pickup {
	return pickupService.New(
		repository,
		profiles,
		catalog,
		txManager,
	)
}

func provideReleaseInterval(cfg *config.Config) ReleaseInterval {
	return ReleaseInterval(cfg.Tasks.AcceptanceReleaseInterval)
}

func provideAcceptanceReleaseTask(
	log logger.Logger,
	pickupSvc acceptance_release.Service,
	interval ReleaseInterval,
) *acceptance_release.AcceptanceRelease {
	return acceptance_release.NewAcceptanceRelease(log, pickupSvc, time.Duration(interval))
}

func provideTaskList(
	acceptanceReleaseTask *acceptance_release.AcceptanceRelease,
) []background.Task {
	return []background.Task{
		acceptanceReleaseTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
