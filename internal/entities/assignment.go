package entities

import "time"

type Assignment struct {
	LoadID       int64
	DriverID     int64
	DriverName   string
	DriverStatus DriverStatusType
	AssignedAt   time.Time
}

// Unassignment с нулевым DriverID означает no-op:
// у груза не было водителя, записи в хранилище не выполнялись.
type Unassignment struct {
	LoadID       int64
	DriverID     int64
	DriverStatus DriverStatusType
}
