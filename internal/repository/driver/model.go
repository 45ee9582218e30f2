package driver

import "time"

// DriverDB хранит имя в трёх колонках: исторические записи заполняли
// full_name, более новые пишут first_name/last_name.
type DriverDB struct {
	ID        int64
	FullName  *string
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DriverModifyDB struct {
	ID        *int64
	FullName  *string
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Status    *string
}
