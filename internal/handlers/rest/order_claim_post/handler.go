package order_claim_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"helpflow/internal/generated/dto"
	"helpflow/internal/pkg/middlewares/auth"
	orderservice "helpflow/internal/service/order"
	"helpflow/pkg/logger"
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
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID := mux.Vars(r)["id"]

	orderEntity, err := h.service.Claim(r.Context(), actor, orderID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidOrderID),
			errors.Is(err, orderservice.ErrInvalidActor):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderservice.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orderservice.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, orderservice.ErrOrderTaken),
			errors.Is(err, orderservice.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.StatusResponse{
		ID:     orderEntity.ID,
		Status: orderEntity.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
