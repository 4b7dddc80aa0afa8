package order_post

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

	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	input := entities.OrderInput{
		Pickup: entities.Location{
			Address:  orderCreateDTO.Pickup.Address,
			City:     orderCreateDTO.Pickup.City,
			Postcode: orderCreateDTO.Pickup.Postcode,
		},
		Dropoff: entities.Location{
			Address:  orderCreateDTO.Dropoff.Address,
			City:     orderCreateDTO.Dropoff.City,
			Postcode: orderCreateDTO.Dropoff.Postcode,
		},
		Parcel: entities.Parcel{
			WeightKg: orderCreateDTO.Parcel.WeightKg,
			BagCount: orderCreateDTO.Parcel.BagCount,
			Type:     orderCreateDTO.Parcel.Type,
			Note:     orderCreateDTO.Parcel.Note,
		},
		ProposedPrice: orderCreateDTO.ProposedPrice,
		ScheduledAt:   orderCreateDTO.ScheduledAt,
	}
	if orderCreateDTO.DistanceKm != nil {
		input.DistanceKm = *orderCreateDTO.DistanceKm
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), actor, input)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrMissingRequiredFields),
			errors.Is(err, orderservice.ErrInvalidActor),
			errors.Is(err, orderservice.ErrInvalidDistance):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderservice.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderCreateResponse{
		ID:     orderEntity.ID,
		Status: orderEntity.Status.String(),
		Pricing: dto.PriceQuote{
			BilledKm:             orderEntity.Pricing.BilledKm,
			StandardPriceCents:   orderEntity.Pricing.StandardPriceCents,
			ProposedPriceCents:   orderEntity.Pricing.ProposedPriceCents,
			FinalPriceCents:      orderEntity.Pricing.FinalPriceCents,
			PlatformFeeCents:     orderEntity.Pricing.PlatformFeeCents,
			CourierEarningsCents: orderEntity.Pricing.CourierEarningsCents,
			Mode:                 orderEntity.Pricing.Mode.String(),
		},
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
