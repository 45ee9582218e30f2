package load

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	loadservice "dispatch/internal/service/load"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const loadColumns = "id, shipper, origin, destination, dispatcher, rate, status, driver_id, problem_flag, issue, created_at, status_changed_at, delivered_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, loadModifyEntity entities.LoadModify) (*entities.Load, error) {
	loadModifyModel := FromDomainModify(&loadModifyEntity)

	query := `INSERT INTO loads (shipper, origin, destination, dispatcher, rate, status, problem_flag, issue, status_changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, FALSE), $8, NOW())
		RETURNING ` + loadColumns

	var loadModel LoadDB
	err := r.querier.QueryRow(
		ctx,
		query,
		loadModifyModel.Shipper,
		loadModifyModel.Origin,
		loadModifyModel.Destination,
		loadModifyModel.Dispatcher,
		loadModifyModel.Rate,
		loadModifyModel.Status,
		loadModifyModel.ProblemFlag,
		loadModifyModel.Issue,
	).Scan(scanTargets(&loadModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository create error: %w", err)
	}

	return ToDomain(&loadModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Load, error) {
	query := `SELECT ` + loadColumns + `
		FROM loads
		WHERE id = $1`

	var loadModel LoadDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&loadModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, loadservice.ErrLoadNotFound
		}

		return nil, fmt.Errorf("unexpected load repository getbyid error: %w", err)
	}

	return ToDomain(&loadModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.LoadFilter) ([]entities.Load, error) {
	builder := qb.
		Select(loadColumns).
		From("loads")

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = s.String()
		}
		builder = builder.Where(sq.Eq{"status": statuses})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"shipper": pattern},
			sq.ILike{"origin": pattern},
			sq.ILike{"destination": pattern},
			sq.ILike{"dispatcher": pattern},
		})
	}
	if filter.CreatedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		builder = builder.Where(sq.Lt{"created_at": *filter.CreatedTo})
	}
	if filter.ProblemOnly {
		builder = builder.Where(sq.Eq{"problem_flag": true})
	}

	builder = builder.OrderBy("status_changed_at DESC", "created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository list error: %w", err)
	}
	defer rows.Close()

	loadModels := make([]LoadDB, 0, 8)
	for rows.Next() {
		var loadModel LoadDB
		if err := rows.Scan(scanTargets(&loadModel)...); err != nil {
			return nil, fmt.Errorf("unexpected load repository list error: %w", err)
		}
		loadModels = append(loadModels, loadModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected load repository list error: %w", err)
	}

	return ToDomainList(loadModels), nil
}

// Update меняет только карточные поля груза. Статус и водитель сюда
// не попадают, их пишет dispatch-репозиторий.
func (r *Repository) Update(ctx context.Context, loadModifyEntity entities.LoadModify) (*entities.Load, error) {
	loadModifyModel := FromDomainModify(&loadModifyEntity)

	builder := qb.
		Update("loads")

	// опциональные поля
	if loadModifyModel.Shipper != nil {
		builder = builder.Set("shipper", loadModifyModel.Shipper)
	}
	if loadModifyModel.Origin != nil {
		builder = builder.Set("origin", loadModifyModel.Origin)
	}
	if loadModifyModel.Destination != nil {
		builder = builder.Set("destination", loadModifyModel.Destination)
	}
	if loadModifyModel.Dispatcher != nil {
		builder = builder.Set("dispatcher", loadModifyModel.Dispatcher)
	}
	if loadModifyModel.Rate != nil {
		builder = builder.Set("rate", loadModifyModel.Rate)
	}
	if loadModifyModel.ProblemFlag != nil {
		builder = builder.Set("problem_flag", loadModifyModel.ProblemFlag)
	}
	if loadModifyModel.Issue != nil {
		builder = builder.Set("issue", loadModifyModel.Issue)
	}

	builder = builder.
		Where(sq.Eq{"id": loadModifyModel.ID}).
		Suffix("RETURNING " + loadColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository update error: %w", err)
	}

	var loadModel LoadDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&loadModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, loadservice.ErrLoadNotFound
		}

		return nil, fmt.Errorf("unexpected load repository update error: %w", err)
	}

	return ToDomain(&loadModel), nil
}

func scanTargets(l *LoadDB) []interface{} {
	return []interface{}{
		&l.ID,
		&l.Shipper,
		&l.Origin,
		&l.Destination,
		&l.Dispatcher,
		&l.Rate,
		&l.Status,
		&l.DriverID,
		&l.ProblemFlag,
		&l.Issue,
		&l.CreatedAt,
		&l.StatusChangedAt,
		&l.DeliveredAt,
	}
}
