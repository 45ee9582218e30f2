package load

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Load struct {
	repository Repository
}

func New(repository Repository) *Load {
	return &Load{
		repository: repository,
	}
}

func (s *Load) CreateLoad(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error) {
	if loadModify.Shipper == nil ||
		loadModify.Origin == nil ||
		loadModify.Destination == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidText(*loadModify.Shipper) ||
		!isValidText(*loadModify.Origin) ||
		!isValidText(*loadModify.Destination) {
		return nil, ErrMissingRequiredFields
	}
	if loadModify.Rate != nil && !isValidRate(*loadModify.Rate) {
		return nil, ErrInvalidRate
	}

	if loadModify.Status == nil {
		defaultStatus := entities.DefaultLoadStatus
		loadModify.Status = &defaultStatus
	} else if !entities.IsValidLoadStatus(*loadModify.Status) {
		return nil, ErrInvalidStatus
	}

	loadEntity, err := s.repository.Create(ctx, loadModify)
	if err != nil {
		return nil, fmt.Errorf("create load: %w", err)
	}

	return loadEntity, nil
}

func (s *Load) GetLoad(ctx context.Context, id int64) (*entities.Load, error) {
	if id <= 0 {
		return nil, ErrInvalidLoadID
	}

	loadEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get load: %w", err)
	}

	return loadEntity, nil
}

func (s *Load) ListLoads(ctx context.Context, filter entities.LoadFilter) ([]entities.Load, error) {
	for _, status := range filter.Statuses {
		if !entities.IsValidLoadStatus(status) {
			return nil, ErrInvalidStatus
		}
	}

	loads, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list loads: %w", err)
	}

	return loads, nil
}

// ListProblems возвращает грузы, помеченные на проблемной доске.
func (s *Load) ListProblems(ctx context.Context) ([]entities.Load, error) {
	loads, err := s.repository.List(ctx, entities.LoadFilter{ProblemOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list problem loads: %w", err)
	}

	return loads, nil
}

// UpdateLoad выполняет частичное обновление описательных полей и флага проблемы.
// Статус здесь менять нельзя: смена статуса идёт только через dispatch workflow,
// иначе обойдутся status_changed_at/delivered_at и освобождение водителя.
func (s *Load) UpdateLoad(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error) {
	if loadModify.ID == nil || *loadModify.ID <= 0 {
		return nil, ErrInvalidLoadID
	}
	if loadModify.Status != nil {
		return nil, ErrStatusNotUpdatable
	}

	if loadModify.Shipper == nil &&
		loadModify.Origin == nil &&
		loadModify.Destination == nil &&
		loadModify.Dispatcher == nil &&
		loadModify.Rate == nil &&
		loadModify.ProblemFlag == nil &&
		loadModify.Issue == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if loadModify.Shipper != nil && !isValidText(*loadModify.Shipper) {
		return nil, ErrMissingRequiredFields
	}
	if loadModify.Origin != nil && !isValidText(*loadModify.Origin) {
		return nil, ErrMissingRequiredFields
	}
	if loadModify.Destination != nil && !isValidText(*loadModify.Destination) {
		return nil, ErrMissingRequiredFields
	}
	if loadModify.Rate != nil && !isValidRate(*loadModify.Rate) {
		return nil, ErrInvalidRate
	}

	loadEntity, err := s.repository.Update(ctx, loadModify)
	if err != nil {
		return nil, fmt.Errorf("update load: %w", err)
	}

	return loadEntity, nil
}
