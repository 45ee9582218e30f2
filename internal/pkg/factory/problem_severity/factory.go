package problem_severity

import (
	"time"

	"dispatch/internal/entities"
)

type ResponseTimeFactory struct{}

func New() *ResponseTimeFactory {
	return &ResponseTimeFactory{}
}

// CalculateRespondBy возвращает срок реакции диспетчера на проблему груза.
func (f *ResponseTimeFactory) CalculateRespondBy(issue entities.IssueType, baseTime time.Time) time.Time {
	resultTime := baseTime
	switch issue {
	case entities.IssueAccident:
		resultTime = resultTime.Add(time.Minute * 15)
	case entities.IssueBreakdown:
		resultTime = resultTime.Add(time.Minute * 30)
	case entities.IssueDetention:
		resultTime = resultTime.Add(time.Hour * 2)
	case entities.IssueWeather, entities.IssueTraffic:
		resultTime = resultTime.Add(time.Hour)
	default:
		resultTime = resultTime.Add(time.Hour)
	}

	return resultTime
}
