package order

import "helpflow/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:        o.ID,
		ClientID:  o.ClientID,
		CourierID: o.CourierID,

		Pickup: entities.Location{
			Address: o.PickupAddress,
			City:    o.PickupCity,
		},
		Dropoff: entities.Location{
			Address: o.DropoffAddress,
			City:    o.DropoffCity,
		},
		DistanceKm: o.DistanceKm,

		Parcel: entities.Parcel{
			WeightKg: o.ParcelWeightKg,
			BagCount: o.ParcelBagCount,
		},

		Pricing: entities.PriceQuote{
			BilledKm:           o.DistanceKm,
			StandardPriceCents: o.StandardPriceCents,
			ProposedPriceCents: o.ProposedPriceCents,
			FinalPriceCents:    o.FinalPriceCents,

			PlatformFeeCents:     o.PlatformFeeCents,
			CourierEarningsCents: o.CourierEarningsCents,

			Mode: entities.PricingModeType(o.PricingMode),
		},

		Status:      entities.OrderStatusType(o.Status),
		ScheduledAt: o.ScheduledAt,

		DeliveryCode: o.DeliveryCode,

		PaymentRef: o.PaymentRef,
		PaidAt:     o.PaidAt,

		CreatedAt:   o.CreatedAt,
		PublishedAt: o.PublishedAt,
		AssignedAt:  o.AssignedAt,
		StartedAt:   o.StartedAt,
		DeliveredAt: o.DeliveredAt,
		CanceledAt:  o.CanceledAt,
	}

	if o.PickupPostcode != nil {
		orderEntity.Pickup.Postcode = *o.PickupPostcode
	}
	if o.DropoffPostcode != nil {
		orderEntity.Dropoff.Postcode = *o.DropoffPostcode
	}
	if o.ParcelType != nil {
		orderEntity.Parcel.Type = *o.ParcelType
	}
	if o.ParcelNote != nil {
		orderEntity.Parcel.Note = *o.ParcelNote
	}

	return orderEntity
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}

	orderDB := &OrderDB{
		ID:        o.ID,
		ClientID:  o.ClientID,
		CourierID: o.CourierID,

		PickupAddress:  o.Pickup.Address,
		PickupCity:     o.Pickup.City,
		DropoffAddress: o.Dropoff.Address,
		DropoffCity:    o.Dropoff.City,

		DistanceKm: o.DistanceKm,

		ParcelWeightKg: o.Parcel.WeightKg,
		ParcelBagCount: o.Parcel.BagCount,

		StandardPriceCents:   o.Pricing.StandardPriceCents,
		ProposedPriceCents:   o.Pricing.ProposedPriceCents,
		FinalPriceCents:      o.Pricing.FinalPriceCents,
		PlatformFeeCents:     o.Pricing.PlatformFeeCents,
		CourierEarningsCents: o.Pricing.CourierEarningsCents,
		PricingMode:          o.Pricing.Mode.String(),

		Status:      o.Status.String(),
		ScheduledAt: o.ScheduledAt,

		DeliveryCode: o.DeliveryCode,

		PaymentRef: o.PaymentRef,
		PaidAt:     o.PaidAt,

		CreatedAt:   o.CreatedAt,
		PublishedAt: o.PublishedAt,
		AssignedAt:  o.AssignedAt,
		StartedAt:   o.StartedAt,
		DeliveredAt: o.DeliveredAt,
		CanceledAt:  o.CanceledAt,
	}

	if o.Pickup.Postcode != "" {
		orderDB.PickupPostcode = &o.Pickup.Postcode
	}
	if o.Dropoff.Postcode != "" {
		orderDB.DropoffPostcode = &o.Dropoff.Postcode
	}
	if o.Parcel.Type != "" {
		orderDB.ParcelType = &o.Parcel.Type
	}
	if o.Parcel.Note != "" {
		orderDB.ParcelNote = &o.Parcel.Note
	}

	return orderDB
}
