package parcel

import (
	"strings"

	"parcel-service/internal/entities"
)

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isValidID(id int64) bool {
	return id > 0
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

func isValidWeight(weight float64) bool {
	return weight >= 0
}

func validateBooking(parcelModify entities.ParcelModify) error {
	if isBlank(parcelModify.OwnerName) ||
		isBlank(parcelModify.OwnerEmail) ||
		isBlank(parcelModify.ReceiverName) ||
		isBlank(parcelModify.Address) {
		return ErrMissingRequiredFields
	}

	if !isValidEmail(*parcelModify.OwnerEmail) {
		return ErrInvalidEmail
	}
	if parcelModify.Weight != nil && !isValidWeight(*parcelModify.Weight) {
		return ErrInvalidWeight
	}
	return nil
}

// validatePatch проверяет, что патч не стирает обязательные поля.
func validatePatch(parcelModify entities.ParcelModify) error {
	if parcelModify.ID == nil || !isValidID(*parcelModify.ID) {
		return ErrInvalidParcelID
	}
	if parcelModify.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if (parcelModify.OwnerName != nil && isBlank(parcelModify.OwnerName)) ||
		(parcelModify.OwnerEmail != nil && isBlank(parcelModify.OwnerEmail)) ||
		(parcelModify.ReceiverName != nil && isBlank(parcelModify.ReceiverName)) ||
		(parcelModify.Address != nil && isBlank(parcelModify.Address)) ||
		(parcelModify.RequestedDate != nil && parcelModify.RequestedDate.IsZero()) {
		return ErrMissingRequiredFields
	}

	if parcelModify.OwnerEmail != nil && !isValidEmail(*parcelModify.OwnerEmail) {
		return ErrInvalidEmail
	}
	if parcelModify.Weight != nil && !isValidWeight(*parcelModify.Weight) {
		return ErrInvalidWeight
	}
	return nil
}
