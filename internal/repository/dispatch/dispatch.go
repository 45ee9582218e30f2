package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	dispatchservice "dispatch/internal/service/dispatch"
)

const loadColumns = "id, shipper, origin, destination, dispatcher, rate, status, driver_id, problem_flag, issue, created_at, status_changed_at, delivered_at"

const driverColumns = "id, full_name, first_name, last_name, phone, email, status, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetDriverID(ctx context.Context, loadID int64) (*int64, error) {
	query := `
        SELECT driver_id
        FROM loads
        WHERE id = $1
    `

	var driverID *int64
	err := r.querier.QueryRow(ctx, query, loadID).Scan(&driverID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatchservice.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected dispatch repository get driver id error: %w", err)
	}

	return driverID, nil
}

func (r *Repository) SetDriver(ctx context.Context, loadID, driverID int64) error {
	query := `
        UPDATE loads
        SET driver_id = $2
        WHERE id = $1
    `

	result, err := r.querier.Exec(ctx, query, loadID, driverID)
	if err != nil {
		return fmt.Errorf("unexpected dispatch repository set driver error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatchservice.ErrLoadNotFound
	}

	return nil
}

func (r *Repository) ClearDriver(ctx context.Context, loadID int64) error {
	query := `
        UPDATE loads
        SET driver_id = NULL
        WHERE id = $1
    `

	result, err := r.querier.Exec(ctx, query, loadID)
	if err != nil {
		return fmt.Errorf("unexpected dispatch repository clear driver error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatchservice.ErrLoadNotFound
	}

	return nil
}

// UpdateStatus пишет статус и status_changed_at одной командой.
// delivered_at затирается только ненулевым значением, прежняя отметка
// доставки переживает любые другие переходы.
func (r *Repository) UpdateStatus(ctx context.Context, loadID int64, status entities.LoadStatusType, changedAt time.Time, deliveredAt *time.Time) (*entities.Load, error) {
	query := `
        UPDATE loads
        SET status = $2,
            status_changed_at = $3,
            delivered_at = COALESCE($4, delivered_at)
        WHERE id = $1
        RETURNING ` + loadColumns

	var loadModel LoadDB
	err := r.querier.QueryRow(ctx, query, loadID, status.String(), changedAt, deliveredAt).Scan(
		&loadModel.ID,
		&loadModel.Shipper,
		&loadModel.Origin,
		&loadModel.Destination,
		&loadModel.Dispatcher,
		&loadModel.Rate,
		&loadModel.Status,
		&loadModel.DriverID,
		&loadModel.ProblemFlag,
		&loadModel.Issue,
		&loadModel.CreatedAt,
		&loadModel.StatusChangedAt,
		&loadModel.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatchservice.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected dispatch repository update status error: %w", err)
	}

	return ToLoadDomain(&loadModel), nil
}

// ListAssignable отдаёт свободных водителей плюс текущего водителя груза,
// чтобы форма назначения не теряла уже выбранное значение.
func (r *Repository) ListAssignable(ctx context.Context, loadID int64) ([]entities.Driver, error) {
	query := `
        SELECT ` + driverColumns + `
        FROM drivers
        WHERE status = 'available'
           OR id = (SELECT driver_id FROM loads WHERE id = $1)
        ORDER BY id
    `

	rows, err := r.querier.Query(ctx, query, loadID)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository list assignable error: %w", err)
	}
	defer rows.Close()

	driverModels, err := collectDrivers(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository list assignable error: %w", err)
	}

	return ToDriverDomainList(driverModels), nil
}

// ListStuckDrivers находит водителей on_load, на которых не ссылается ни один
// недоставленный груз. Следствие частично применённого назначения.
func (r *Repository) ListStuckDrivers(ctx context.Context) ([]entities.Driver, error) {
	query := `
        SELECT ` + driverColumns + `
        FROM drivers d
        WHERE d.status = 'on_load'
          AND NOT EXISTS (
              SELECT 1
              FROM loads l
              WHERE l.driver_id = d.id
                AND l.status NOT IN ('delivered', 'cancelled')
          )
        ORDER BY d.id
    `

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository list stuck drivers error: %w", err)
	}
	defer rows.Close()

	driverModels, err := collectDrivers(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected dispatch repository list stuck drivers error: %w", err)
	}

	return ToDriverDomainList(driverModels), nil
}

func collectDrivers(rows pgx.Rows) ([]AssignableDriverDB, error) {
	driverModels := make([]AssignableDriverDB, 0, 8)
	for rows.Next() {
		var driverModel AssignableDriverDB
		err := rows.Scan(
			&driverModel.ID,
			&driverModel.FullName,
			&driverModel.FirstName,
			&driverModel.LastName,
			&driverModel.Phone,
			&driverModel.Email,
			&driverModel.Status,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		driverModels = append(driverModels, driverModel)
	}

	return driverModels, rows.Err()
}
