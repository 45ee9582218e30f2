package truck_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/truck"
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

	var truckUpdateDTO dto.TruckCreate
	err = json.NewDecoder(r.Body).Decode(&truckUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	truckModifyEntity := entities.TruckModify{
		ID: &id,
	}
	if truckUpdateDTO.UnitNumber != "" {
		truckModifyEntity.UnitNumber = &truckUpdateDTO.UnitNumber
	}
	if truckUpdateDTO.Make != "" {
		truckModifyEntity.Make = &truckUpdateDTO.Make
	}
	if truckUpdateDTO.Model != "" {
		truckModifyEntity.Model = &truckUpdateDTO.Model
	}
	if truckUpdateDTO.Year != 0 {
		truckModifyEntity.Year = &truckUpdateDTO.Year
	}
	if truckUpdateDTO.Status != "" {
		statusType := entities.TruckStatusType(truckUpdateDTO.Status)
		truckModifyEntity.Status = &statusType
	}

	truckEntity, err := h.service.UpdateTruck(r.Context(), truckModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, truck.ErrTruckNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, truck.ErrInvalidTruckID),
			errors.Is(err, truck.ErrMissingUnitNumber),
			errors.Is(err, truck.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, truck.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	truckDTO := dto.FromTruck(truckEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(truckDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
