package review

import (
	"fmt"

	"parcel-service/internal/pkg/errs"
)

var (
	ErrMissingRequiredFields   = fmt.Errorf("missing required fields: %w", errs.ErrValidation)
	ErrInvalidParcelID         = fmt.Errorf("invalid parcel id: %w", errs.ErrValidation)
	ErrInvalidDeliveryPersonID = fmt.Errorf("invalid delivery person id: %w", errs.ErrValidation)
	ErrInvalidRating           = fmt.Errorf("rating must be between 1 and 5: %w", errs.ErrValidation)
	ErrReviewerNotOwner        = fmt.Errorf("only the parcel owner can review it: %w", errs.ErrValidation)

	ErrParcelNotDelivered = fmt.Errorf("parcel is not delivered: %w", errs.ErrIllegalState)

	ErrReviewAlreadyExists = fmt.Errorf("parcel already has a review: %w", errs.ErrConflict)
	ErrConcurrentReview    = fmt.Errorf("parcel is being reviewed concurrently: %w", errs.ErrConflict)
)
