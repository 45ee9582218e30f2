package loads_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/load"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	loads, err := h.service.ListLoads(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromLoadList(loads)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.LoadFilter, error) {
	query := r.URL.Query()

	var filter entities.LoadFilter

	if statusParam := query.Get("status"); statusParam != "" {
		for _, s := range strings.Split(statusParam, ",") {
			filter.Statuses = append(filter.Statuses, entities.LoadStatusType(strings.TrimSpace(s)))
		}
	}

	filter.Search = strings.TrimSpace(query.Get("search"))

	if from := query.Get("created_from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return entities.LoadFilter{}, err
		}
		filter.CreatedFrom = &t
	}
	if to := query.Get("created_to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return entities.LoadFilter{}, err
		}
		filter.CreatedTo = &t
	}

	return filter, nil
}
