package parcel

import (
	"fmt"

	"parcel-service/internal/pkg/errs"
)

var (
	ErrMissingRequiredFields   = fmt.Errorf("missing required fields: %w", errs.ErrValidation)
	ErrNoFieldsToUpdate        = fmt.Errorf("no fields to update: %w", errs.ErrValidation)
	ErrInvalidParcelID         = fmt.Errorf("invalid parcel id: %w", errs.ErrValidation)
	ErrInvalidDeliveryPersonID = fmt.Errorf("invalid delivery person id: %w", errs.ErrValidation)
	ErrInvalidEmail            = fmt.Errorf("invalid email: %w", errs.ErrValidation)
	ErrInvalidWeight           = fmt.Errorf("invalid weight: %w", errs.ErrValidation)
	ErrInvalidDateRange        = fmt.Errorf("invalid date range: %w", errs.ErrValidation)

	ErrParcelNotFound = fmt.Errorf("parcel not found: %w", errs.ErrNotFound)

	ErrParcelNotPending   = fmt.Errorf("parcel is not pending: %w", errs.ErrIllegalState)
	ErrNotParcelAssignee  = fmt.Errorf("parcel is assigned to another delivery person: %w", errs.ErrIllegalState)
	ErrUnknownStatus      = fmt.Errorf("unknown parcel status: %w", errs.ErrIllegalTransition)
	ErrTransitionRejected = fmt.Errorf("status transition is not allowed: %w", errs.ErrIllegalTransition)
	ErrAssignmentRequired = fmt.Errorf("parcel must be assigned to go on the way: %w", errs.ErrIllegalTransition)

	ErrConcurrentModification = fmt.Errorf("parcel was modified concurrently: %w", errs.ErrConflict)
)
