//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignable_drivers_get_test
package assignable_drivers_get

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

type Service interface {
	AssignableDrivers(ctx context.Context, loadID int64) ([]entities.Driver, error)
}
