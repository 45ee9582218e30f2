package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"

	"dispatch/internal/entities"
	driverservice "dispatch/internal/service/driver"
)

type Dispatch struct {
	repository    Repository
	driverService DriverService
	txManager     TxManager
}

func New(repository Repository, driverService DriverService, txManager TxManager) *Dispatch {
	return &Dispatch{
		repository:    repository,
		driverService: driverService,
		txManager:     txManager,
	}
}

// AssignDriver связывает груз и водителя двумя записями в одной транзакции.
// Занятость водителя не проверяется: повторное назначение просто переводит
// его на новый груз, предыдущий груз остаётся ссылаться на водителя.
func (s *Dispatch) AssignDriver(ctx context.Context, loadID, driverID int64) (*entities.Assignment, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	driverEntity, err := s.driverService.GetDriver(ctx, driverID)
	if err != nil {
		// сентинел driver-сервиса переводится в собственный, чтобы
		// обработчики не зависели от чужого пакета ошибок
		if errors.Is(err, driverservice.ErrDriverNotFound) {
			return nil, fmt.Errorf("assign driver: %w", ErrDriverNotFound)
		}
		return nil, fmt.Errorf("assign driver: %w", err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.SetDriver(ctx, loadID, driverID); err != nil {
			return fmt.Errorf("set driver on load: %w", err)
		}

		driverEntity, err = s.driverService.UpdateDriver(ctx, entities.DriverModify{
			ID:     pointer.To(driverID),
			Status: pointer.To(entities.DriverOnLoad),
		})
		if err != nil {
			return fmt.Errorf("mark driver on load: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, driverservice.ErrDriverNotFound) {
			return nil, fmt.Errorf("assign driver: %w", ErrDriverNotFound)
		}
		return nil, fmt.Errorf("assign driver: %w", err)
	}

	return &entities.Assignment{
		LoadID:       loadID,
		DriverID:     driverID,
		DriverName:   driverEntity.DisplayName,
		DriverStatus: driverEntity.Status,
		AssignedAt:   time.Now().UTC(),
	}, nil
}

// UnassignDriver снимает водителя с груза. Если водителя нет, возвращает
// пустой результат без единой записи в базу.
func (s *Dispatch) UnassignDriver(ctx context.Context, loadID int64) (*entities.Unassignment, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}

	result := &entities.Unassignment{LoadID: loadID}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		driverID, err := s.repository.GetDriverID(ctx, loadID)
		if err != nil {
			return fmt.Errorf("get driver id: %w", err)
		}

		if driverID == nil {
			return nil
		}

		if err := s.repository.ClearDriver(ctx, loadID); err != nil {
			return fmt.Errorf("clear driver on load: %w", err)
		}

		driverEntity, err := s.driverService.UpdateDriver(ctx, entities.DriverModify{
			ID:     driverID,
			Status: pointer.To(entities.DriverAvailable),
		})
		if err != nil {
			return fmt.Errorf("release driver: %w", err)
		}

		result.DriverID = *driverID
		result.DriverStatus = driverEntity.Status

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unassign driver: %w", err)
	}

	return result, nil
}

// ChangeStatus переводит груз в любой валидный статус без матрицы переходов.
// Каждая запись статуса проставляет status_changed_at; доставка дополнительно
// фиксирует delivered_at и освобождает водителя.
func (s *Dispatch) ChangeStatus(ctx context.Context, loadID int64, status entities.LoadStatusType) (*entities.Load, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}
	if !entities.IsValidLoadStatus(status) {
		return nil, ErrInvalidStatus
	}

	now := time.Now().UTC()

	var deliveredAt *time.Time
	if status == entities.LoadDelivered {
		deliveredAt = &now
	}

	var loadEntity *entities.Load

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error

		loadEntity, err = s.repository.UpdateStatus(ctx, loadID, status, now, deliveredAt)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		if status != entities.LoadDelivered || loadEntity.DriverID == nil {
			return nil
		}

		driverID := *loadEntity.DriverID

		if err := s.repository.ClearDriver(ctx, loadID); err != nil {
			return fmt.Errorf("clear driver on load: %w", err)
		}

		if _, err := s.driverService.UpdateDriver(ctx, entities.DriverModify{
			ID:     pointer.To(driverID),
			Status: pointer.To(entities.DriverAvailable),
		}); err != nil {
			return fmt.Errorf("release driver: %w", err)
		}

		loadEntity.DriverID = nil

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("change status: %w", err)
	}

	return loadEntity, nil
}

// AssignableDrivers возвращает свободных водителей плюс текущего водителя
// груза, чтобы селектор в форме не терял выбранное значение.
func (s *Dispatch) AssignableDrivers(ctx context.Context, loadID int64) ([]entities.Driver, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}

	drivers, err := s.repository.ListAssignable(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("list assignable drivers: %w", err)
	}

	return drivers, nil
}

// StuckDrivers находит водителей в статусе on_load, на которых не ссылается
// ни один активный груз. Такое бывает после частично применённого назначения.
func (s *Dispatch) StuckDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.ListStuckDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stuck drivers: %w", err)
	}

	return drivers, nil
}
