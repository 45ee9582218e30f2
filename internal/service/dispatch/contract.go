//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	GetDriverID(ctx context.Context, loadID int64) (*int64, error)
	SetDriver(ctx context.Context, loadID int64, driverID int64) error
	ClearDriver(ctx context.Context, loadID int64) error
	UpdateStatus(ctx context.Context, loadID int64, status entities.LoadStatusType, changedAt time.Time, deliveredAt *time.Time) (*entities.Load, error)
	ListAssignable(ctx context.Context, loadID int64) ([]entities.Driver, error)
	ListStuckDrivers(ctx context.Context) ([]entities.Driver, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
	UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
