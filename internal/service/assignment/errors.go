package assignment

import (
	"fmt"

	"parcel-service/internal/pkg/errs"
)

var (
	ErrInvalidParcelID         = fmt.Errorf("invalid parcel id: %w", errs.ErrValidation)
	ErrInvalidDeliveryPersonID = fmt.Errorf("invalid delivery person id: %w", errs.ErrValidation)
	ErrInvalidUserID           = fmt.Errorf("invalid user id: %w", errs.ErrValidation)
	ErrInvalidDeliveryDate     = fmt.Errorf("invalid approximate delivery date: %w", errs.ErrValidation)
	ErrInvalidEmail            = fmt.Errorf("invalid email: %w", errs.ErrValidation)
	ErrInvalidRole             = fmt.Errorf("invalid role: %w", errs.ErrValidation)

	ErrDeliveryPersonNotFound = fmt.Errorf("delivery person not found: %w", errs.ErrNotFound)

	ErrParcelNotPending = fmt.Errorf("parcel is not pending: %w", errs.ErrIllegalState)

	ErrAssignmentConflict = fmt.Errorf("parcel assignment lost a concurrent update: %w", errs.ErrConflict)
)
