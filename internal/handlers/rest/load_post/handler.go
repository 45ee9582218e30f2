package load_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loadCreateDTO dto.LoadCreate
	err := json.NewDecoder(r.Body).Decode(&loadCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	loadModifyEntity := entities.LoadModify{
		Shipper:     &loadCreateDTO.Shipper,
		Origin:      &loadCreateDTO.Origin,
		Destination: &loadCreateDTO.Destination,
		Dispatcher:  &loadCreateDTO.Dispatcher,
		Rate:        &loadCreateDTO.Rate,
	}
	if loadCreateDTO.Status != "" {
		statusType := entities.LoadStatusType(loadCreateDTO.Status)
		loadModifyEntity.Status = &statusType
	}
	if loadCreateDTO.Issue != "" {
		issueType := entities.IssueType(loadCreateDTO.Issue)
		loadModifyEntity.Issue = &issueType
	}

	loadEntity, err := h.service.CreateLoad(r.Context(), loadModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrMissingRequiredFields),
			errors.Is(err, load.ErrInvalidRate),
			errors.Is(err, load.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromLoad(loadEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
