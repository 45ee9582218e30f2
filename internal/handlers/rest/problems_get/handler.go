package problems_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/pkg/logger"
)

type Handler struct {
	log         handlerLogger
	service     Service
	timeFactory ResponseTimeFactory
}

func New(log handlerLogger, service Service, timeFactory ResponseTimeFactory) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:         handlerLog,
		service:     service,
		timeFactory: timeFactory,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	loads, err := h.service.ListProblems(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProblemLoad, len(loads))
	for i := range loads {
		response[i] = dto.ProblemLoad{
			Load:      dto.FromLoad(&loads[i]),
			RespondBy: h.timeFactory.CalculateRespondBy(loads[i].Issue, loads[i].StatusChangedAt),
		}
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
