//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loads_get_test
package loads_get

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
	ListLoads(ctx context.Context, filter entities.LoadFilter) ([]entities.Load, error)
}
