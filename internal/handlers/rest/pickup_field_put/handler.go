package pickup_field_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/pkg/middlewares/auth"
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
	uid, ok := auth.UIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	pickupID := mux.Vars(r)["id"]

	var fieldUpdateDTO dto.PickupFieldUpdate
	err := json.NewDecoder(r.Body).Decode(&fieldUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateField(
		r.Context(),
		uid,
		pickupID,
		fieldUpdateDTO.Field,
		fieldUpdateDTO.Value,
		entities.FieldOpType(fieldUpdateDTO.Op),
	)
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrValidation),
			errors.Is(err, pickup.ErrUnknownField),
			errors.Is(err, pickup.ErrUnknownOp):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pickup.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, pickup.ErrPickupNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, pickup.ErrConflict),
			errors.Is(err, pickup.ErrInvalidState):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	pickupDTO := dto.FromPickupEntity(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(pickupDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
