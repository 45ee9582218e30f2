package stuck_driver_report

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/metrics"
	"dispatch/pkg/logger"
)

type Service interface {
	StuckDrivers(ctx context.Context) ([]entities.Driver, error)
}

// StuckDriverReport периодически ищет водителей, зависших в on_load без
// активного груза, пишет их в лог и выставляет gauge stuck_drivers.
// Чинит таких водителей оператор руками через driver PUT.
type StuckDriverReport struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStuckDriverReport(log logger.Logger, service Service, interval time.Duration) *StuckDriverReport {
	return &StuckDriverReport{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StuckDriverReport) TTL() time.Duration {
	return s.interval
}

func (s *StuckDriverReport) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	drivers, err := s.service.StuckDrivers(ctxWithTimeout)
	if err != nil {
		return err
	}

	metrics.StuckDrivers.Set(float64(len(drivers)))

	for _, d := range drivers {
		s.log.With(
			logger.NewField("driver_id", d.ID),
			logger.NewField("driver", d.DisplayName),
		).Warn("driver stuck in on_load without an active load")
	}

	return nil
}

func (s *StuckDriverReport) Info() string {
	return "stuck driver report"
}
