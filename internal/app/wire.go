//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"dispatch/internal/handlers/rest/assign_post"
	"dispatch/internal/handlers/rest/assignable_drivers_get"
	"dispatch/internal/handlers/rest/dashboard_get"
	"dispatch/internal/handlers/rest/driver_delete"
	"dispatch/internal/handlers/rest/driver_get"
	"dispatch/internal/handlers/rest/driver_post"
	"dispatch/internal/handlers/rest/driver_put"
	"dispatch/internal/handlers/rest/drivers_get"
	"dispatch/internal/handlers/rest/load_get"
	"dispatch/internal/handlers/rest/load_post"
	"dispatch/internal/handlers/rest/load_put"
	"dispatch/internal/handlers/rest/load_status_put"
	"dispatch/internal/handlers/rest/loads_export_get"
	"dispatch/internal/handlers/rest/loads_get"
	"dispatch/internal/handlers/rest/problems_get"
	"dispatch/internal/handlers/rest/truck_post"
	"dispatch/internal/handlers/rest/truck_put"
	"dispatch/internal/handlers/rest/trucks_get"
	"dispatch/internal/handlers/rest/unassign_post"
	"dispatch/internal/handlers/tasks/stuck_driver_report"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/problem_severity"
	"dispatch/internal/pkg/factory/status_handle"

	dispatchRepo "dispatch/internal/repository/dispatch"
	driverRepo "dispatch/internal/repository/driver"
	loadRepo "dispatch/internal/repository/load"
	truckRepo "dispatch/internal/repository/truck"
	dispatchService "dispatch/internal/service/dispatch"
	driverService "dispatch/internal/service/driver"
	loadService "dispatch/internal/service/load"
	loadeventService "dispatch/internal/service/loadevent"
	truckService "dispatch/internal/service/truck"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReportInterval time.Duration
)

type Application struct {
	ServiceLoad       ServiceLoad
	ServiceDriver     ServiceDriver
	ServiceTruck      ServiceTruck
	ServiceDispatch   ServiceDispatch
	TimeFactory       *problem_severity.ResponseTimeFactory
	BackgroundWorkers *background.Worker
}

type ServiceLoad interface {
	load_get.Service
	loads_get.Service
	load_post.Service
	load_put.Service
	loads_export_get.Service
	problems_get.Service
	dashboard_get.LoadService
}

type ServiceDriver interface {
	driver_get.Service
	drivers_get.Service
	driver_post.Service
	driver_put.Service
	driver_delete.Service
	dashboard_get.DriverService
}

type ServiceTruck interface {
	truck_post.Service
	trucks_get.Service
	truck_put.Service
}

type ServiceDispatch interface {
	assign_post.Service
	unassign_post.Service
	assignable_drivers_get.Service
	load_status_put.Service
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
		provideReportInterval,

		provideLoadRepository,
		provideDriverRepository,
		provideTruckRepository,
		provideDispatchRepository,

		provideServiceLoad,
		provideServiceDriver,
		provideServiceTruck,
		provideServiceDispatch,
		problem_severity.New,

		provideStuckDriverReportTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLoad), new(*loadService.Load)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceTruck), new(*truckService.Truck)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),

		wire.Bind(new(loadService.Repository), new(*loadRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(truckService.Repository), new(*truckRepo.Repository)),
		wire.Bind(new(dispatchService.Repository), new(*dispatchRepo.Repository)),
		wire.Bind(new(dispatchService.DriverService), new(*driverService.Driver)),

		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stuck_driver_report.Service), new(*dispatchService.Dispatch)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	LoadEventService *loadeventService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-load-status-changed)
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

		provideLoadRepository,
		provideDriverRepository,
		provideDispatchRepository,

		provideServiceLoad,
		provideServiceDriver,
		provideServiceDispatch,

		provideStatusHandlerFabric,
		provideLoadEventService,

		wire.Bind(new(loadService.Repository), new(*loadRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(dispatchService.Repository), new(*dispatchRepo.Repository)),
		wire.Bind(new(dispatchService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(loadeventService.LoadProvider), new(*loadService.Load)),
		wire.Bind(new(loadeventService.DispatchService), new(*dispatchService.Dispatch)),
		wire.Bind(new(loadeventService.HandlerFactory), new(*status_handle.StatusHandlerFactory)),

		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

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

func provideLoadRepository(querier *querier.Querier) *loadRepo.Repository {
	return loadRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideTruckRepository(querier *querier.Querier) *truckRepo.Repository {
	return truckRepo.New(querier)
}

func provideDispatchRepository(querier *querier.Querier) *dispatchRepo.Repository {
	return dispatchRepo.New(querier)
}

func provideServiceLoad(repository loadService.Repository) *loadService.Load {
	return loadService.New(repository)
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideServiceTruck(repository truckService.Repository) *truckService.Truck {
	return truckService.New(repository)
}

func provideServiceDispatch(
	repository dispatchService.Repository,
	drivers dispatchService.DriverService,
	txManager dispatchService.TxManager,
) *dispatchService.Dispatch {
	return dispatchService.New(repository, drivers, txManager)
}

func provideReportInterval(cfg *config.Config) ReportInterval {
	return ReportInterval(cfg.Tasks.StuckDriverReportInterval)
}

func provideStatusHandlerFabric(dispatch *dispatchService.Dispatch) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(dispatch)
}

// provideLoadEventService создает loadevent-сервис для обработки событий Kafka
func provideLoadEventService(
	loadProvider loadeventService.LoadProvider,
	handlerFactory loadeventService.HandlerFactory,
) *loadeventService.Service {
	return loadeventService.New(loadProvider, handlerFactory)
}

func provideStuckDriverReportTask(
	log logger.Logger,
	dispatch stuck_driver_report.Service,
	interval ReportInterval,
) *stuck_driver_report.StuckDriverReport {
	return stuck_driver_report.NewStuckDriverReport(log, dispatch, time.Duration(interval))
}

func provideTaskList(
	stuckDriverReportTask *stuck_driver_report.StuckDriverReport,
) []background.Task {
	return []background.Task{
		stuckDriverReportTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
