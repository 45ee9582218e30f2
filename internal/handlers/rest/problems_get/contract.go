//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problems_get_test
package problems_get

import (
	"context"
	"time"

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
	ListProblems(ctx context.Context) ([]entities.Load, error)
}

type ResponseTimeFactory interface {
	CalculateRespondBy(issue entities.IssueType, baseTime time.Time) time.Time
}
