package pickups_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/service/pickup"
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
	var filter entities.PickupFilter
	query := r.URL.Query()
	if createdBy := query.Get("createdBy"); createdBy != "" {
		filter.CreatedBy = pointer.ToString(createdBy)
	}
	if acceptedBy := query.Get("acceptedBy"); acceptedBy != "" {
		filter.AcceptedBy = pointer.ToString(acceptedBy)
	}
	if status := query.Get("status"); status != "" {
		filter.Status = pointer.To(entities.PickupStatusType(status))
	}

	pickupEntities, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrValidation):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	pickupDTOs := make([]dto.Pickup, len(pickupEntities))
	for i := range pickupEntities {
		pickupDTOs[i] = dto.FromPickupEntity(&pickupEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(pickupDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
