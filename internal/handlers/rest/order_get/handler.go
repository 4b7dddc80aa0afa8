package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"helpflow/internal/entities"
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

	orderEntity, err := h.service.GetOrder(r.Context(), actor, orderID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidOrderID),
			errors.Is(err, orderservice.ErrInvalidActor):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderservice.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orderservice.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
		ID:        orderEntity.ID,
		ClientID:  orderEntity.ClientID,
		CourierID: orderEntity.CourierID,
		Pickup: dto.Location{
			Address:  orderEntity.Pickup.Address,
			City:     orderEntity.Pickup.City,
			Postcode: orderEntity.Pickup.Postcode,
		},
		Dropoff: dto.Location{
			Address:  orderEntity.Dropoff.Address,
			City:     orderEntity.Dropoff.City,
			Postcode: orderEntity.Dropoff.Postcode,
		},
		Parcel: dto.Parcel{
			WeightKg: orderEntity.Parcel.WeightKg,
			BagCount: orderEntity.Parcel.BagCount,
			Type:     orderEntity.Parcel.Type,
			Note:     orderEntity.Parcel.Note,
		},
		DistanceKm: orderEntity.DistanceKm,
		Pricing: dto.PriceQuote{
			BilledKm:             orderEntity.Pricing.BilledKm,
			StandardPriceCents:   orderEntity.Pricing.StandardPriceCents,
			ProposedPriceCents:   orderEntity.Pricing.ProposedPriceCents,
			FinalPriceCents:      orderEntity.Pricing.FinalPriceCents,
			PlatformFeeCents:     orderEntity.Pricing.PlatformFeeCents,
			CourierEarningsCents: orderEntity.Pricing.CourierEarningsCents,
			Mode:                 orderEntity.Pricing.Mode.String(),
		},
		Status:      orderEntity.Status.String(),
		PaymentRef:  orderEntity.PaymentRef,
		PaidAt:      orderEntity.PaidAt,
		ScheduledAt: orderEntity.ScheduledAt,
		CreatedAt:   orderEntity.CreatedAt,
		PublishedAt: orderEntity.PublishedAt,
		AssignedAt:  orderEntity.AssignedAt,
		StartedAt:   orderEntity.StartedAt,
		DeliveredAt: orderEntity.DeliveredAt,
		CanceledAt:  orderEntity.CanceledAt,
	}

	// Код подтверждения видят только владелец и админ,
	// курьер получает его от получателя при вручении.
	if orderEntity.DeliveryCode != nil && canSeeDeliveryCode(actor, orderEntity) {
		orderDTO.DeliveryCode = *orderEntity.DeliveryCode
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func canSeeDeliveryCode(actor entities.Actor, orderEntity *entities.Order) bool {
	if actor.Role == entities.RoleAdmin {
		return true
	}
	return actor.Role == entities.RoleClient && actor.ID == orderEntity.ClientID
}
