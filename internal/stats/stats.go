package stats

import (
	"time"

	"dispatch/internal/entities"
)

// UnknownStatus — корзина для грузов с невалидным статусом в CountByStatus.
const UnknownStatus = "unknown"

type DaySummary struct {
	Day       time.Time
	LoadCount int
	Revenue   float64
}

func TotalRevenue(loads []entities.Load) float64 {
	var total float64
	for _, l := range loads {
		total += l.Rate
	}
	return total
}

// CountByStatus считает каждый груз ровно один раз: сумма по всем корзинам
// равна длине входа.
func CountByStatus(loads []entities.Load) map[string]int {
	counts := make(map[string]int, len(loads))
	for _, l := range loads {
		key := l.Status.String()
		if !entities.IsValidLoadStatus(l.Status) {
			key = UnknownStatus
		}
		counts[key]++
	}
	return counts
}

func RevenueByDispatcher(loads []entities.Load) map[string]float64 {
	revenue := make(map[string]float64, len(loads))
	for _, l := range loads {
		revenue[l.Dispatcher] += l.Rate
	}
	return revenue
}

func CountDriversByStatus(drivers []entities.Driver) map[string]int {
	counts := make(map[string]int, len(drivers))
	for _, d := range drivers {
		counts[d.Status.String()]++
	}
	return counts
}

// WeeklySeries раскладывает грузы по дням недели, содержащей referenceDate.
// Всегда ровно 7 записей, понедельник первым, граница дня по локальной
// полуночи referenceDate.
func WeeklySeries(loads []entities.Load, referenceDate time.Time) []DaySummary {
	start := startOfWeek(referenceDate)

	series := make([]DaySummary, 7)
	for i := range series {
		series[i].Day = start.AddDate(0, 0, i)
	}

	end := start.AddDate(0, 0, 7)
	for _, l := range loads {
		createdAt := l.CreatedAt.In(referenceDate.Location())
		if createdAt.Before(start) || !createdAt.Before(end) {
			continue
		}
		idx := daysBetween(start, createdAt)
		series[idx].LoadCount++
		series[idx].Revenue += l.Rate
	}

	return series
}

func startOfWeek(referenceDate time.Time) time.Time {
	year, month, day := referenceDate.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, referenceDate.Location())

	offset := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}

// daysBetween через календарные даты, а не деление наносекунд:
// AddDate корректно переживает переход на летнее время.
func daysBetween(start, t time.Time) int {
	for i := 0; i < 7; i++ {
		next := start.AddDate(0, 0, i+1)
		if t.Before(next) {
			return i
		}
	}
	return 6
}
