package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"dispatch/internal/entities"
)

var loadHeader = []string{
	"id",
	"shipper",
	"origin",
	"destination",
	"dispatcher",
	"rate",
	"status",
	"driver_id",
	"problem_flag",
	"issue",
	"created_at",
	"status_changed_at",
	"delivered_at",
}

// WriteLoads пишет грузы в CSV с заголовком. Экранирование запятых, кавычек
// и переводов строк отдано encoding/csv, свои правила не изобретаем.
func WriteLoads(w io.Writer, loads []entities.Load) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(loadHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, l := range loads {
		if err := cw.Write(loadRecord(l)); err != nil {
			return fmt.Errorf("write csv record for load %d: %w", l.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

func loadRecord(l entities.Load) []string {
	driverID := ""
	if l.DriverID != nil {
		driverID = strconv.FormatInt(*l.DriverID, 10)
	}

	deliveredAt := ""
	if l.DeliveredAt != nil {
		deliveredAt = l.DeliveredAt.UTC().Format(time.RFC3339)
	}

	return []string{
		strconv.FormatInt(l.ID, 10),
		l.Shipper,
		l.Origin,
		l.Destination,
		l.Dispatcher,
		strconv.FormatFloat(l.Rate, 'f', 2, 64),
		l.Status.String(),
		driverID,
		strconv.FormatBool(l.ProblemFlag),
		l.Issue.String(),
		l.CreatedAt.UTC().Format(time.RFC3339),
		l.StatusChangedAt.UTC().Format(time.RFC3339),
		deliveredAt,
	}
}
