package parcel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parcel-service/internal/entities"
)

type Parcel struct {
	repository Repository
}

func New(repository Repository) *Parcel {
	return &Parcel{
		repository: repository,
	}
}

func (p *Parcel) BookParcel(ctx context.Context, parcelModify entities.ParcelModify) (int64, error) {
	if err := validateBooking(parcelModify); err != nil {
		return 0, err
	}

	// статус и дату бронирования задает сервис, клиентские значения игнорируются
	bookingDate := time.Now().UTC()
	status := entities.DefaultParcelStatus
	email := strings.TrimSpace(*parcelModify.OwnerEmail)

	parcelModify.ID = nil
	parcelModify.OwnerEmail = &email
	parcelModify.Status = &status
	parcelModify.BookingDate = &bookingDate
	if parcelModify.RequestedDate == nil || parcelModify.RequestedDate.IsZero() {
		parcelModify.RequestedDate = &bookingDate
	}

	id, err := p.repository.Create(ctx, parcelModify)
	if err != nil {
		return 0, fmt.Errorf("create parcel: %w", err)
	}

	ParcelsBookedTotal.Inc()
	return id, nil
}

func (p *Parcel) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	if !isValidID(id) {
		return nil, ErrInvalidParcelID
	}

	parcel, err := p.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	return parcel, nil
}

func (p *Parcel) GetParcels(ctx context.Context) ([]entities.Parcel, error) {
	parcels, err := p.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get parcels: %w", err)
	}
	return parcels, nil
}

func (p *Parcel) GetParcelsByOwner(ctx context.Context, email string) ([]entities.Parcel, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	parcels, err := p.repository.GetByOwnerEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("get parcels by owner: %w", err)
	}
	return parcels, nil
}

func (p *Parcel) UpdateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if err := validatePatch(parcelModify); err != nil {
		return nil, err
	}

	// статус меняется только через переходы
	parcelModify.Status = nil
	parcelModify.BookingDate = nil

	current, err := p.repository.GetByID(ctx, *parcelModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	if current.Status != entities.ParcelPending {
		return nil, fmt.Errorf("%w: parcel %d is %s", ErrParcelNotPending, current.ID, current.Status)
	}

	updated, err := p.repository.UpdatePending(ctx, parcelModify)
	if err != nil {
		return nil, fmt.Errorf("update parcel: %w", err)
	}
	return updated, nil
}

func (p *Parcel) CancelParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	if !isValidID(id) {
		return nil, ErrInvalidParcelID
	}

	current, err := p.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	if current.Status != entities.ParcelPending {
		return nil, fmt.Errorf("%w: parcel %d is %s", ErrParcelNotPending, current.ID, current.Status)
	}

	canceled, err := p.repository.UpdateStatus(ctx, id, entities.ParcelPending, entities.ParcelCanceled)
	if err != nil {
		return nil, fmt.Errorf("cancel parcel: %w", err)
	}

	ParcelStatusTransitionsTotal.WithLabelValues(entities.ParcelPending.String(), entities.ParcelCanceled.String()).Inc()
	return canceled, nil
}

func (p *Parcel) UpdateStatus(ctx context.Context, id int64, newStatus entities.ParcelStatusType) (*entities.Parcel, error) {
	return p.updateStatus(ctx, id, newStatus, nil)
}

// UpdateStatusByAssignee применяет переход от имени курьера: посылка должна быть назначена на него.
func (p *Parcel) UpdateStatusByAssignee(ctx context.Context, id int64, assigneeID int64, newStatus entities.ParcelStatusType) (*entities.Parcel, error) {
	if !isValidID(assigneeID) {
		return nil, ErrInvalidDeliveryPersonID
	}
	return p.updateStatus(ctx, id, newStatus, &assigneeID)
}

func (p *Parcel) SearchByDateRange(ctx context.Context, start time.Time, end time.Time) ([]entities.Parcel, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: both bounds are required", ErrInvalidDateRange)
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrInvalidDateRange,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	parcels, err := p.repository.GetByRequestedDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("search parcels: %w", err)
	}
	return parcels, nil
}

func (p *Parcel) updateStatus(ctx context.Context, id int64, newStatus entities.ParcelStatusType, assigneeID *int64) (*entities.Parcel, error) {
	if !isValidID(id) {
		return nil, ErrInvalidParcelID
	}

	next, ok := entities.ParseParcelStatus(newStatus.String())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, newStatus)
	}

	current, err := p.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	if assigneeID != nil && (current.AssigneeID == nil || *current.AssigneeID != *assigneeID) {
		return nil, fmt.Errorf("%w: parcel %d", ErrNotParcelAssignee, current.ID)
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrTransitionRejected, current.Status, next)
	}
	// в пути посылка оказывается только через назначение курьера
	if next == entities.ParcelOnTheWay {
		return nil, ErrAssignmentRequired
	}

	updated, err := p.repository.UpdateStatus(ctx, id, current.Status, next)
	if err != nil {
		return nil, fmt.Errorf("update parcel status: %w", err)
	}

	ParcelStatusTransitionsTotal.WithLabelValues(current.Status.String(), next.String()).Inc()
	return updated, nil
}
