package user

import (
	"fmt"

	"parcel-service/internal/pkg/errs"
)

var (
	ErrMissingRequiredFields = fmt.Errorf("missing required fields: %w", errs.ErrValidation)
	ErrNoFieldsToUpdate      = fmt.Errorf("no fields to update: %w", errs.ErrValidation)
	ErrInvalidEmail          = fmt.Errorf("invalid email: %w", errs.ErrValidation)
	ErrInvalidRole           = fmt.Errorf("invalid role: %w", errs.ErrValidation)
	ErrInvalidPage           = fmt.Errorf("invalid page: %w", errs.ErrValidation)

	ErrUserNotFound = fmt.Errorf("user not found: %w", errs.ErrNotFound)

	ErrUserAlreadyExists = fmt.Errorf("user already exists: %w", errs.ErrConflict)
)
