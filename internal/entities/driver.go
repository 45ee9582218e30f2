package entities

import "time"

type Driver struct {
	ID          int64
	DisplayName string
	Phone       string
	Email       string
	Status      DriverStatusType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DriverStatusType string

const (
	DriverAvailable DriverStatusType = "available"
	DriverOnLoad    DriverStatusType = "on_load"
	DriverInactive  DriverStatusType = "inactive"
	DriverOnLeave   DriverStatusType = "on_leave"
)

const DefaultDriverStatus = DriverAvailable

func (s DriverStatusType) String() string {
	return string(s)
}

func IsValidDriverStatus(s DriverStatusType) bool {
	switch s {
	case DriverAvailable, DriverOnLoad, DriverInactive, DriverOnLeave:
		return true
	default:
		return false
	}
}

// DriverModify несёт имя в том виде, в котором его прислал источник:
// либо единое FullName, либо раздельные FirstName/LastName.
// Каноническое DisplayName собирается на границе хранилища.
type DriverModify struct {
	ID        *int64
	FullName  *string
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Status    *DriverStatusType
}
