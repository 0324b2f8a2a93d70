package pickup_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/pickup"
	"service/internal/service/profile"
	"service/pkg/logger"
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
	uid, ok := auth.UIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var pickupCreateDTO dto.PickupCreate
	err := json.NewDecoder(r.Body).Decode(&pickupCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	payload := entities.PickupCreate{
		AddressData:        pickupCreateDTO.AddressData,
		PickupDate:         pickupCreateDTO.PickupDate,
		PickupTime:         pickupCreateDTO.PickupTime,
		PickupNote:         pickupCreateDTO.PickupNote,
		Materials:          dto.ToMaterialEntities(pickupCreateDTO.Materials),
		DisclaimerAccepted: pickupCreateDTO.DisclaimerAccepted,
	}

	created, err := h.service.Create(r.Context(), uid, payload)
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrValidation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pickup.ErrQuotaExceeded):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, profile.ErrProfileNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PickupCreateResponse{
		ID: created.ID,
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
