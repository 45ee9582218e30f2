//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_get_test
package dashboard_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type LoadService interface {
	ListLoads(ctx context.Context, filter entities.LoadFilter) ([]entities.Load, error)
}

type DriverService interface {
	GetDrivers(ctx context.Context) ([]entities.Driver, error)
}
