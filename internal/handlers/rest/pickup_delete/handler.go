package pickup_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/pkg/middlewares/auth"
	"service/internal/service/pickup"
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

	err := h.service.Delete(r.Context(), uid, pickupID)
	if err != nil {
		switch {
		case errors.Is(err, pickup.ErrValidation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pickup.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, pickup.ErrPickupNotFound):
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
