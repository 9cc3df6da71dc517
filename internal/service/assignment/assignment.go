package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parcel-service/internal/entities"
	"parcel-service/internal/pkg/errs"
)

type Assignment struct {
	parcelRepository ParcelRepository
	userRepository   UserRepository
}

func New(parcelRepository ParcelRepository, userRepository UserRepository) *Assignment {
	return &Assignment{
		parcelRepository: parcelRepository,
		userRepository:   userRepository,
	}
}

func (a *Assignment) AssignParcel(ctx context.Context, assignment entities.ParcelAssignment) (*entities.Parcel, error) {
	if !isValidID(assignment.ParcelID) {
		return nil, ErrInvalidParcelID
	}
	if !isValidID(assignment.DeliveryPersonID) {
		return nil, ErrInvalidDeliveryPersonID
	}
	if !isValidDeliveryDate(assignment.ApproximateDeliveryDate) {
		return nil, ErrInvalidDeliveryDate
	}

	parcel, err := a.assign(ctx, assignment)
	switch {
	case err == nil:
		ParcelAssignmentsTotal.WithLabelValues(resultAssigned).Inc()
	case errors.Is(err, errs.ErrConflict):
		ParcelAssignmentsTotal.WithLabelValues(resultConflict).Inc()
	default:
		ParcelAssignmentsTotal.WithLabelValues(resultRejected).Inc()
	}
	return parcel, err
}

func (a *Assignment) ListAssignments(ctx context.Context, deliveryPersonID int64) ([]entities.Parcel, error) {
	if !isValidID(deliveryPersonID) {
		return nil, ErrInvalidDeliveryPersonID
	}

	parcels, err := a.parcelRepository.GetByAssignee(ctx, deliveryPersonID)
	if err != nil {
		return nil, fmt.Errorf("get parcels by assignee: %w", err)
	}
	return parcels, nil
}

// ListAssignmentsByEmail находит курьера по email и возвращает его посылки.
func (a *Assignment) ListAssignmentsByEmail(ctx context.Context, email string) ([]entities.Parcel, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	user, err := a.userRepository.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDeliveryPersonNotFound, email)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if user.Role != entities.RoleDeliveryPerson {
		return nil, fmt.Errorf("%w: user %d is %s", ErrDeliveryPersonNotFound, user.ID, user.Role)
	}

	return a.ListAssignments(ctx, user.ID)
}

func (a *Assignment) PromoteUser(ctx context.Context, userID int64, rawRole string) (*entities.User, error) {
	if !isValidID(userID) {
		return nil, ErrInvalidUserID
	}

	role, ok := entities.ParseUserRole(rawRole)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, rawRole)
	}

	user, err := a.userRepository.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}
	return user, nil
}

func (a *Assignment) assign(ctx context.Context, assignment entities.ParcelAssignment) (*entities.Parcel, error) {
	deliveryPerson, err := a.userRepository.GetByID(ctx, assignment.DeliveryPersonID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrDeliveryPersonNotFound, assignment.DeliveryPersonID)
		}
		return nil, fmt.Errorf("get delivery person: %w", err)
	}
	if deliveryPerson.Role != entities.RoleDeliveryPerson {
		return nil, fmt.Errorf("%w: user %d is %s", ErrDeliveryPersonNotFound, deliveryPerson.ID, deliveryPerson.Role)
	}

	parcel, err := a.parcelRepository.GetByID(ctx, assignment.ParcelID)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	if parcel.Status != entities.ParcelPending {
		return nil, fmt.Errorf("%w: parcel %d is %s", ErrParcelNotPending, parcel.ID, parcel.Status)
	}

	assignment.ApproximateDeliveryDate = assignment.ApproximateDeliveryDate.UTC().Truncate(time.Second)

	// между чтением и записью посылку могли отменить или назначить, это решает условный UPDATE
	assigned, err := a.parcelRepository.Assign(ctx, assignment)
	if err != nil {
		return nil, fmt.Errorf("assign parcel: %w", err)
	}
	return assigned, nil
}
