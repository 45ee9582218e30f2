package loadevent

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	loadservice "dispatch/internal/service/load"
)

type Service struct {
	loadProvider  LoadProvider
	statusFactory HandlerFactory
}

func New(loadProvider LoadProvider, statusFactory HandlerFactory) *Service {
	return &Service{
		loadProvider:  loadProvider,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessStatusChange(ctx context.Context, loadModify entities.LoadModify) (*entities.Load, error) {
	if loadModify.ID == nil || loadModify.Status == nil {
		return nil, fmt.Errorf("load id and status are required")
	}

	// Верификация: событие могло пережить сам груз
	loadEntity, err := s.loadProvider.GetLoad(ctx, *loadModify.ID)
	if err != nil {
		if errors.Is(err, loadservice.ErrLoadNotFound) {
			return nil, fmt.Errorf("get load: %w", ErrLoadNotFound)
		}
		return nil, fmt.Errorf("get load: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(*loadModify.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return loadEntity, nil
		}
		return loadEntity, err
	}

	if err := executeFn(ctx, loadEntity.ID); err != nil {
		return nil, err
	}

	return loadEntity, nil
}
