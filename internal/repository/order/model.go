package order

import "time"

type OrderDB struct {
	ID        string
	ClientID  string
	CourierID *string

	PickupAddress  string
	PickupCity     string
	PickupPostcode *string

	DropoffAddress  string
	DropoffCity     string
	DropoffPostcode *string

	DistanceKm int64

	ParcelWeightKg float64
	ParcelBagCount int64
	ParcelType     *string
	ParcelNote     *string

	StandardPriceCents   int64
	ProposedPriceCents   *int64
	FinalPriceCents      int64
	PlatformFeeCents     int64
	CourierEarningsCents int64
	PricingMode          string

	Status      string
	ScheduledAt *time.Time

	DeliveryCode *string

	PaymentRef *string
	PaidAt     *time.Time

	CreatedAt   time.Time
	PublishedAt *time.Time
	AssignedAt  *time.Time
	StartedAt   *time.Time
	DeliveredAt *time.Time
	CanceledAt  *time.Time
}
