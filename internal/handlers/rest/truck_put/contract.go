//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=truck_put_test
package truck_put

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
	UpdateTruck(ctx context.Context, truckModifyEntity entities.TruckModify) (*entities.Truck, error)
}
