package driver_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/driver"
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
	var driverCreateDTO dto.DriverCreate
	err := json.NewDecoder(r.Body).Decode(&driverCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{}
	if driverCreateDTO.FullName != "" {
		driverModifyEntity.FullName = &driverCreateDTO.FullName
	}
	if driverCreateDTO.FirstName != "" {
		driverModifyEntity.FirstName = &driverCreateDTO.FirstName
	}
	if driverCreateDTO.LastName != "" {
		driverModifyEntity.LastName = &driverCreateDTO.LastName
	}
	if driverCreateDTO.Phone != "" {
		driverModifyEntity.Phone = &driverCreateDTO.Phone
	}
	if driverCreateDTO.Email != "" {
		driverModifyEntity.Email = &driverCreateDTO.Email
	}
	if driverCreateDTO.Status != "" {
		statusType := entities.DriverStatusType(driverCreateDTO.Status)
		driverModifyEntity.Status = &statusType
	}

	id, err := h.service.CreateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingName),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidEmail),
			errors.Is(err, driver.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DriverCreateResponse{
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
