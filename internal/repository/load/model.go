package load

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

type LoadModifyDB struct {
	ID          *int64
	Shipper     *string
	Origin      *string
	Destination *string
	Dispatcher  *string
	Rate        *float64
	Status      *string
	ProblemFlag *bool
	Issue       *string
}
