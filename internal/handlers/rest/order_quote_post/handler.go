package order_quote_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"helpflow/internal/entities"
	"helpflow/internal/generated/dto"
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
	var quoteDTO dto.QuoteRequest
	err := json.NewDecoder(r.Body).Decode(&quoteDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	input := orderservice.QuoteInput{
		Pickup: entities.Location{
			Address:  quoteDTO.Pickup.Address,
			City:     quoteDTO.Pickup.City,
			Postcode: quoteDTO.Pickup.Postcode,
		},
		Dropoff: entities.Location{
			Address:  quoteDTO.Dropoff.Address,
			City:     quoteDTO.Dropoff.City,
			Postcode: quoteDTO.Dropoff.Postcode,
		},
		ProposedPrice: quoteDTO.ProposedPrice,
	}
	if quoteDTO.DistanceKm != nil {
		input.DistanceKm = *quoteDTO.DistanceKm
	}

	quote, err := h.service.Quote(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrMissingRequiredFields),
			errors.Is(err, orderservice.ErrInvalidDistance):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PriceQuote{
		BilledKm:             quote.BilledKm,
		StandardPriceCents:   quote.StandardPriceCents,
		ProposedPriceCents:   quote.ProposedPriceCents,
		FinalPriceCents:      quote.FinalPriceCents,
		PlatformFeeCents:     quote.PlatformFeeCents,
		CourierEarningsCents: quote.CourierEarningsCents,
		Mode:                 quote.Mode.String(),
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
