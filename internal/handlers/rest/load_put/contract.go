//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_put_test
package load_put

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
	UpdateLoad(ctx context.Context, loadModifyEntity entities.LoadModify) (*entities.Load, error)
}
