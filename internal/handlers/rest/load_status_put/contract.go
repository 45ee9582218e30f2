//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_status_put_test
package load_status_put

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
	ChangeStatus(ctx context.Context, loadID int64, status entities.LoadStatusType) (*entities.Load, error)
}
