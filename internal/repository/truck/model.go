package truck

import "time"

type TruckDB struct {
	ID         int64
	UnitNumber string
	Make       *string
	Model      *string
	Year       *int
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TruckModifyDB struct {
	ID         *int64
	UnitNumber *string
	Make       *string
	Model      *string
	Year       *int
	Status     *string
}
