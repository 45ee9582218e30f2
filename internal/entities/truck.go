package entities

import "time"

type Truck struct {
	ID         int64
	UnitNumber string
	Make       string
	Model      string
	Year       int
	Status     TruckStatusType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TruckStatusType string

const (
	TruckActive  TruckStatusType = "active"
	TruckInShop  TruckStatusType = "in_shop"
	TruckRetired TruckStatusType = "retired"
)

const DefaultTruckStatus = TruckActive

func (s TruckStatusType) String() string {
	return string(s)
}

func IsValidTruckStatus(s TruckStatusType) bool {
	switch s {
	case TruckActive, TruckInShop, TruckRetired:
		return true
	default:
		return false
	}
}

type TruckModify struct {
	ID         *int64
	UnitNumber *string
	Make       *string
	Model      *string
	Year       *int
	Status     *TruckStatusType
}
