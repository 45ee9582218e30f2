package loads_export_get

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/export"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	loads, err := h.service.ListLoads(r.Context(), entities.LoadFilter{})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="loads.csv"`)
	w.WriteHeader(http.StatusOK)

	// заголовки уже ушли, клиенту достанется обрезанный файл
	if err := export.WriteLoads(w, loads); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write csv export")
	}
}
