package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"helpflow/internal/entities"
	"helpflow/internal/generated/dto"
	"helpflow/internal/pkg/middlewares/auth"
	orderservice "helpflow/internal/service/order"
	"helpflow/pkg/logger"
)

// Handler отдает заказы вызывающего: клиенту - созданные им,
// курьеру - взятые им.
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

	var (
		orderEntities []entities.Order
		err           error
	)
	switch actor.Role {
	case entities.RoleClient:
		orderEntities, err = h.service.ListClientOrders(r.Context(), actor)
	case entities.RoleCourier:
		orderEntities, err = h.service.ListCourierOrders(r.Context(), actor)
	default:
		w.WriteHeader(http.StatusForbidden)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidActor):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderservice.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderList{
		Orders: make([]dto.Order, len(orderEntities)),
	}
	for i := range orderEntities {
		response.Orders[i] = toOrderDTO(&orderEntities[i])
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

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	return dto.Order{
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
}
