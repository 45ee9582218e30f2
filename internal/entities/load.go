package entities

import "time"

type Load struct {
	ID              int64
	Shipper         string
	Origin          string
	Destination     string
	Dispatcher      string
	Rate            float64
	Status          LoadStatusType
	DriverID        *int64
	ProblemFlag     bool
	Issue           IssueType
	CreatedAt       time.Time
	StatusChangedAt time.Time
	DeliveredAt     *time.Time
}

type LoadStatusType string

const (
	LoadPlanned   LoadStatusType = "planned"
	LoadAvailable LoadStatusType = "available"
	LoadInTransit LoadStatusType = "in_transit"
	LoadDelivered LoadStatusType = "delivered"
	LoadCancelled LoadStatusType = "cancelled"
	LoadProblem   LoadStatusType = "problem"
)

const DefaultLoadStatus = LoadPlanned

func (s LoadStatusType) String() string {
	return string(s)
}

// Terminal статусы, из которых workflow сам ничего не продолжает.
// Ручной перевод обратно при этом не запрещён.
func (s LoadStatusType) Terminal() bool {
	return s == LoadDelivered || s == LoadCancelled
}

func IsValidLoadStatus(s LoadStatusType) bool {
	switch s {
	case LoadPlanned, LoadAvailable, LoadInTransit, LoadDelivered, LoadCancelled, LoadProblem:
		return true
	default:
		return false
	}
}

type IssueType string

const (
	IssueBreakdown IssueType = "breakdown"
	IssueAccident  IssueType = "accident"
	IssueDetention IssueType = "detention"
	IssueWeather   IssueType = "weather"
	IssueTraffic   IssueType = "traffic"
	IssueOther     IssueType = "other"
)

func (i IssueType) String() string {
	return string(i)
}

type LoadModify struct {
	ID          *int64
	Shipper     *string
	Origin      *string
	Destination *string
	Dispatcher  *string
	Rate        *float64
	Status      *LoadStatusType
	ProblemFlag *bool
	Issue       *IssueType
}

// LoadFilter описывает предикаты выборки; нулевые значения отключают предикат.
type LoadFilter struct {
	Statuses    []LoadStatusType
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	ProblemOnly bool
}
