package truck_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var truckCreateDTO dto.TruckCreate
	err := json.NewDecoder(r.Body).Decode(&truckCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	truckModifyEntity := entities.TruckModify{
		UnitNumber: &truckCreateDTO.UnitNumber,
	}
	if truckCreateDTO.Make != "" {
		truckModifyEntity.Make = &truckCreateDTO.Make
	}
	if truckCreateDTO.Model != "" {
		truckModifyEntity.Model = &truckCreateDTO.Model
	}
	if truckCreateDTO.Year != 0 {
		truckModifyEntity.Year = &truckCreateDTO.Year
	}
	if truckCreateDTO.Status != "" {
		statusType := entities.TruckStatusType(truckCreateDTO.Status)
		truckModifyEntity.Status = &statusType
	}

	id, err := h.service.CreateTruck(r.Context(), truckModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, truck.ErrMissingUnitNumber),
			errors.Is(err, truck.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, truck.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TruckCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
