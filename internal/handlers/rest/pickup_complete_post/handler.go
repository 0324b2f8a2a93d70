package pickup_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/handlers/rest/dto"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/pickup"
	"service/internal/service/profile"
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

	var completeDTO dto.PickupComplete
	err := json.NewDecoder(r.Body).Decode(&completeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Complete(r.Context(), uid, pickupID, dto.ToMaterialEntities(completeDTO.Materials))
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrValidation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pickup.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, pickup.ErrPickupNotFound),
			errors.Is(err, profile.ErrProfileNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, pickup.ErrInvalidState):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
