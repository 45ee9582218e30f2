package truck

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	truckservice "dispatch/internal/service/truck"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const truckColumns = "id, unit_number, make, model, year, status, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, truckModifyEntity entities.TruckModify) (int64, error) {
	truckModifyModel := FromDomainModify(&truckModifyEntity)

	query := `INSERT INTO trucks (unit_number, make, model, year, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		truckModifyModel.UnitNumber,
		truckModifyModel.Make,
		truckModifyModel.Model,
		truckModifyModel.Year,
		truckModifyModel.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, truckservice.ErrConflict
		}
		return 0, fmt.Errorf("unexpected truck repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Truck, error) {
	query := `
	SELECT ` + truckColumns + `
	FROM trucks
	ORDER BY unit_number`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository getall error: %w", err)
	}
	defer rows.Close()

	truckModels := make([]TruckDB, 0, 8)
	for rows.Next() {
		var truckModel TruckDB
		err := rows.Scan(
			&truckModel.ID,
			&truckModel.UnitNumber,
			&truckModel.Make,
			&truckModel.Model,
			&truckModel.Year,
			&truckModel.Status,
			&truckModel.CreatedAt,
			&truckModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected truck repository getall error: %w", err)
		}
		truckModels = append(truckModels, truckModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected truck repository getall error: %w", err)
	}

	return ToDomainList(truckModels), nil
}

func (r *Repository) Update(ctx context.Context, truckModifyEntity entities.TruckModify) (*entities.Truck, error) {
	truckModifyModel := FromDomainModify(&truckModifyEntity)

	builder := qb.
		Update("trucks")

	// опциональные поля
	if truckModifyModel.UnitNumber != nil {
		builder = builder.Set("unit_number", truckModifyModel.UnitNumber)
	}
	if truckModifyModel.Make != nil {
		builder = builder.Set("make", truckModifyModel.Make)
	}
	if truckModifyModel.Model != nil {
		builder = builder.Set("model", truckModifyModel.Model)
	}
	if truckModifyModel.Year != nil {
		builder = builder.Set("year", truckModifyModel.Year)
	}
	if truckModifyModel.Status != nil {
		builder = builder.Set("status", truckModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": truckModifyModel.ID}).
		Suffix("RETURNING " + truckColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository update error: %w", err)
	}

	var truckModel TruckDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&truckModel.ID,
		&truckModel.UnitNumber,
		&truckModel.Make,
		&truckModel.Model,
		&truckModel.Year,
		&truckModel.Status,
		&truckModel.CreatedAt,
		&truckModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, truckservice.ErrTruckNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, truckservice.ErrConflict
		}

		return nil, fmt.Errorf("unexpected truck repository update error: %w", err)
	}

	return ToDomain(&truckModel), nil
}
