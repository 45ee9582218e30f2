package dispatch

import "time"

type LoadDB struct {
	ID              int64
	Shipper         string
	Origin          string
	Destination     string
	Dispatcher      string
	Rate            float64
	Status          string
	DriverID        *int64
	ProblemFlag     bool
	Issue           *string
	CreatedAt       time.Time
	StatusChangedAt time.Time
	DeliveredAt     *time.Time
}

type AssignableDriverDB struct {
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
