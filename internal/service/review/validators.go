package review

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

func isValidRating(rating int) bool {
	return rating >= entities.MinRating && rating <= entities.MaxRating
}

func validateReview(reviewModify entities.ReviewModify) error {
	if reviewModify.ParcelID == nil || !isValidID(*reviewModify.ParcelID) {
		return ErrInvalidParcelID
	}
	if isBlank(reviewModify.ReviewerName) || isBlank(reviewModify.ReviewerEmail) || reviewModify.Rating == nil {
		return ErrMissingRequiredFields
	}
	if !isValidRating(*reviewModify.Rating) {
		return ErrInvalidRating
	}
	return nil
}
