package load_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var loadUpdateDTO dto.LoadUpdate
	err = json.NewDecoder(r.Body).Decode(&loadUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	loadModifyEntity := entities.LoadModify{
		ID:          &id,
		Shipper:     loadUpdateDTO.Shipper,
		Origin:      loadUpdateDTO.Origin,
		Destination: loadUpdateDTO.Destination,
		Dispatcher:  loadUpdateDTO.Dispatcher,
		Rate:        loadUpdateDTO.Rate,
		ProblemFlag: loadUpdateDTO.ProblemFlag,
	}
	if loadUpdateDTO.Status != nil {
		statusType := entities.LoadStatusType(*loadUpdateDTO.Status)
		loadModifyEntity.Status = &statusType
	}
	if loadUpdateDTO.Issue != nil {
		issueType := entities.IssueType(*loadUpdateDTO.Issue)
		loadModifyEntity.Issue = &issueType
	}

	loadEntity, err := h.service.UpdateLoad(r.Context(), loadModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrLoadNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, load.ErrInvalidLoadID),
			errors.Is(err, load.ErrMissingRequiredFields),
			errors.Is(err, load.ErrInvalidRate),
			errors.Is(err, load.ErrStatusNotUpdatable):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromLoad(loadEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
