//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loadevent_test
package loadevent

import (
	"context"

	"dispatch/internal/entities"
)

type LoadProvider interface {
	GetLoad(ctx context.Context, id int64) (*entities.Load, error)
}

type DispatchService interface {
	ChangeStatus(ctx context.Context, loadID int64, status entities.LoadStatusType) (*entities.Load, error)
	UnassignDriver(ctx context.Context, loadID int64) (*entities.Unassignment, error)
}

type (
	ExecuteFn      func(ctx context.Context, loadID int64) error
	HandlerFactory interface {
		GetHandler(status entities.LoadStatusType) (ExecuteFn, error)
	}
)
