package truck

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/entities"
)

type Truck struct {
	repository Repository
}

func New(repository Repository) *Truck {
	return &Truck{
		repository: repository,
	}
}

func (s *Truck) CreateTruck(ctx context.Context, truckModify entities.TruckModify) (int64, error) {
	if truckModify.UnitNumber == nil || strings.TrimSpace(*truckModify.UnitNumber) == "" {
		return 0, ErrMissingUnitNumber
	}

	if truckModify.Status == nil {
		defaultStatus := entities.DefaultTruckStatus
		truckModify.Status = &defaultStatus
	} else if !entities.IsValidTruckStatus(*truckModify.Status) {
		return 0, ErrInvalidStatus
	}

	id, err := s.repository.Create(ctx, truckModify)
	if err != nil {
		return 0, fmt.Errorf("create truck: %w", err)
	}

	return id, nil
}

func (s *Truck) GetTrucks(ctx context.Context) ([]entities.Truck, error) {
	trucks, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get trucks: %w", err)
	}

	return trucks, nil
}

func (s *Truck) UpdateTruck(ctx context.Context, truckModify entities.TruckModify) (*entities.Truck, error) {
	if truckModify.ID == nil || *truckModify.ID <= 0 {
		return nil, ErrInvalidTruckID
	}

	if truckModify.UnitNumber == nil &&
		truckModify.Make == nil &&
		truckModify.Model == nil &&
		truckModify.Year == nil &&
		truckModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingUnitNumber)
	}

	if truckModify.UnitNumber != nil && strings.TrimSpace(*truckModify.UnitNumber) == "" {
		return nil, ErrMissingUnitNumber
	}
	if truckModify.Status != nil && !entities.IsValidTruckStatus(*truckModify.Status) {
		return nil, ErrInvalidStatus
	}

	truckEntity, err := s.repository.Update(ctx, truckModify)
	if err != nil {
		return nil, fmt.Errorf("update truck: %w", err)
	}

	return truckEntity, nil
}
