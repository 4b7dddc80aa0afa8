package order

import (
	"strings"

	"helpflow/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidActor(actor entities.Actor) bool {
	return strings.TrimSpace(actor.ID) != "" && entities.IsValidActorRole(actor.Role.String())
}

func isValidLocation(loc entities.Location) bool {
	return strings.TrimSpace(loc.Address) != "" && strings.TrimSpace(loc.City) != ""
}

func validateDraft(draft entities.OrderInput) error {
	if !isValidLocation(draft.Pickup) || !isValidLocation(draft.Dropoff) {
		return ErrMissingRequiredFields
	}
	if draft.Parcel.WeightKg < 0 || draft.Parcel.BagCount < 0 {
		return ErrMissingRequiredFields
	}
	return nil
}
