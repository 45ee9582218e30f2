package driver

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	if !hasAnyName(driverModify) {
		return 0, ErrMissingName
	}

	if driverModify.Phone != nil && *driverModify.Phone != "" && !isValidPhone(*driverModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if driverModify.Email != nil && *driverModify.Email != "" && !isValidEmail(*driverModify.Email) {
		return 0, ErrInvalidEmail
	}

	if driverModify.Status == nil {
		defaultStatus := entities.DefaultDriverStatus
		driverModify.Status = &defaultStatus
	} else if !entities.IsValidDriverStatus(*driverModify.Status) {
		return 0, ErrInvalidStatus
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

// UpdateDriver допускает прямую запись статуса: так оператор вручную чинит
// "застрявшего" водителя после частично применённого назначения.
func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || *driverModify.ID <= 0 {
		return nil, ErrInvalidDriverID
	}

	if driverModify.FullName == nil &&
		driverModify.FirstName == nil &&
		driverModify.LastName == nil &&
		driverModify.Phone == nil &&
		driverModify.Email == nil &&
		driverModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Phone != nil && *driverModify.Phone != "" && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.Email != nil && *driverModify.Email != "" && !isValidEmail(*driverModify.Email) {
		return nil, ErrInvalidEmail
	}
	if driverModify.Status != nil && !entities.IsValidDriverStatus(*driverModify.Status) {
		return nil, ErrInvalidStatus
	}

	driverEntity, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("update driver: %w", err)
	}

	return driverEntity, nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	driverEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	return driverEntity, nil
}

func (s *Driver) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get drivers: %w", err)
	}

	return drivers, nil
}

func (s *Driver) DeleteDriver(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDriverID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete driver: %w", err)
	}

	return nil
}

func hasAnyName(m entities.DriverModify) bool {
	if m.FullName != nil && isValidName(*m.FullName) {
		return true
	}
	if m.FirstName != nil && isValidName(*m.FirstName) {
		return true
	}
	if m.LastName != nil && isValidName(*m.LastName) {
		return true
	}
	return false
}
