package entities

// PricingModeType - признак того, чей прайс попал в итоговую цену:
// тег "client" ставится по факту наличия валидного предложения клиента,
// даже если само предложение оказалось ниже тарифа и не повлияло на сумму.
type PricingModeType string

const (
	PricingStandard PricingModeType = "standard"
	PricingClient   PricingModeType = "client"
)

func (m PricingModeType) String() string {
	return string(m)
}

// PriceQuote - результат расчета цены в целых центах.
// Инварианты: FinalPriceCents >= StandardPriceCents,
// PlatformFeeCents + CourierEarningsCents == FinalPriceCents.
type PriceQuote struct {
	BilledKm           int64
	StandardPriceCents int64
	ProposedPriceCents *int64
	FinalPriceCents    int64

	PlatformFeeCents     int64
	CourierEarningsCents int64

	Mode PricingModeType
}
