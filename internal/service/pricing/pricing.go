package pricing

import (
	"math"

	"helpflow/internal/entities"
)

// Тариф: 5.00 EUR за первый километр, 0.20 EUR за каждый следующий.
// Комиссия площадки 20% от итоговой цены.
const (
	BasePriceCents  int64 = 500
	PricePerKmCents int64 = 20
	FeeRate               = 0.20
)

// Calculator считает котировку детерминированно и только в целых центах,
// плавающая точка не попадает в сохраняемые суммы.
type Calculator struct{}

func New() *Calculator {
	return &Calculator{}
}

// BilledKm - оплачиваемая дистанция: дробные километры округляются вверх,
// все что меньше километра тарифицируется как один километр.
func BilledKm(distanceKm float64) int64 {
	if distanceKm <= 1 || math.IsNaN(distanceKm) {
		return 1
	}
	return int64(math.Ceil(distanceKm))
}

// StandardPriceCents - цена по тарифу за оплачиваемую дистанцию.
func StandardPriceCents(billedKm int64) int64 {
	if billedKm < 1 {
		billedKm = 1
	}
	return BasePriceCents + (billedKm-1)*PricePerKmCents
}

// Quote строит котировку. proposedPrice - предложение клиента в евро,
// nil или неположительное значение трактуется как отсутствие предложения.
// Итоговая цена никогда не опускается ниже тарифа: предложение ниже
// тарифа молча игнорируется в сумме, но режим остается "client".
func (c *Calculator) Quote(distanceKm float64, proposedPrice *float64) entities.PriceQuote {
	billedKm := BilledKm(distanceKm)
	standard := StandardPriceCents(billedKm)

	var proposedCents *int64
	if proposedPrice != nil && *proposedPrice > 0 && !math.IsNaN(*proposedPrice) && !math.IsInf(*proposedPrice, 0) {
		cents := int64(math.Round(*proposedPrice * 100))
		proposedCents = &cents
	}

	final := standard
	mode := entities.PricingStandard
	if proposedCents != nil {
		mode = entities.PricingClient
		if *proposedCents > final {
			final = *proposedCents
		}
	}

	fee := int64(math.Round(float64(final) * FeeRate))
	earnings := final - fee
	if earnings < 0 {
		earnings = 0
	}

	return entities.PriceQuote{
		BilledKm:           billedKm,
		StandardPriceCents: standard,
		ProposedPriceCents: proposedCents,
		FinalPriceCents:    final,

		PlatformFeeCents:     fee,
		CourierEarningsCents: earnings,

		Mode: mode,
	}
}
