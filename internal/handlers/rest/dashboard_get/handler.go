package dashboard_get

import (
	"encoding/json"
	"net/http"
	"time"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/stats"
	"dispatch/pkg/logger"
)

type Handler struct {
	log           handlerLogger
	loadService   LoadService
	driverService DriverService
	now           func() time.Time
}

func New(log handlerLogger, loadService LoadService, driverService DriverService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:           handlerLog,
		loadService:   loadService,
		driverService: driverService,
		now:           time.Now,
	}
}

// Агрегаты считаются с нуля на каждый запрос, без инкрементальных кешей.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	loads, err := h.loadService.ListLoads(r.Context(), entities.LoadFilter{})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	drivers, err := h.driverService.GetDrivers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	weekly := stats.WeeklySeries(loads, h.now())
	weeklyDTO := make([]dto.DaySummary, len(weekly))
	for i, day := range weekly {
		weeklyDTO[i] = dto.DaySummary{
			Day:       day.Day.Format("2006-01-02"),
			LoadCount: day.LoadCount,
			Revenue:   day.Revenue,
		}
	}

	response := dto.Dashboard{
		TotalRevenue:        stats.TotalRevenue(loads),
		CountByStatus:       stats.CountByStatus(loads),
		RevenueByDispatcher: stats.RevenueByDispatcher(loads),
		DriversByStatus:     stats.CountDriversByStatus(drivers),
		WeeklySeries:        weeklyDTO,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
