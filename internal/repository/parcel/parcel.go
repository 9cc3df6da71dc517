package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	"parcel-service/internal/service/assignment"
	service "parcel-service/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var parcelColumns = []string{
	"id",
	"owner_name",
	"owner_email",
	"owner_phone",
	"receiver_name",
	"receiver_phone",
	"address",
	"weight",
	"status",
	"assignee_id",
	"requested_date",
	"booking_date",
	"approximate_delivery_date",
	"updated_at",
}

const returningParcel = "RETURNING id, owner_name, owner_email, owner_phone, receiver_name, receiver_phone, " +
	"address, weight, status, assignee_id, requested_date, booking_date, approximate_delivery_date, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (int64, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)
	query := `INSERT INTO parcels (owner_name, owner_email, owner_phone, receiver_name, receiver_phone,
			address, weight, status, requested_date, booking_date)
		VALUES ($1, $2, COALESCE($3::text, ''), $4, COALESCE($5::text, ''), $6, COALESCE($7::double precision, 0), $8, $9, $10)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		parcelModifyModel.OwnerName,
		parcelModifyModel.OwnerEmail,
		parcelModifyModel.OwnerPhone,
		parcelModifyModel.ReceiverName,
		parcelModifyModel.ReceiverPhone,
		parcelModifyModel.Address,
		parcelModifyModel.Weight,
		parcelModifyModel.Status,
		parcelModifyModel.RequestedDate,
		parcelModifyModel.BookingDate,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return 0, fmt.Errorf("%w: %w", service.ErrMissingRequiredFields, err)
		}
		return 0, repository.Unexpected("unexpected parcel repository create error", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query, args, err := qb.
		Select(parcelColumns...).
		From("parcels").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", service.ErrParcelNotFound, id)
		}
		return nil, repository.Unexpected("unexpected parcel repository getbyid error", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns...).
		From("parcels").
		OrderBy("booking_date DESC", "id DESC")

	return r.selectParcels(ctx, builder, "getall")
}

func (r *Repository) GetByOwnerEmail(ctx context.Context, email string) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns...).
		From("parcels").
		Where(sq.Eq{"owner_email": email}).
		OrderBy("booking_date DESC", "id DESC")

	return r.selectParcels(ctx, builder, "getbyowneremail")
}

func (r *Repository) GetByAssignee(ctx context.Context, deliveryPersonID int64) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns...).
		From("parcels").
		Where(sq.Eq{"assignee_id": deliveryPersonID}).
		OrderBy("requested_date", "id")

	return r.selectParcels(ctx, builder, "getbyassignee")
}

// GetByRequestedDateRange ищет посылки с requested_date в [start, end], обе границы включительно.
func (r *Repository) GetByRequestedDateRange(ctx context.Context, start time.Time, end time.Time) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns...).
		From("parcels").
		Where(sq.And{
			sq.GtOrEq{"requested_date": start},
			sq.LtOrEq{"requested_date": end},
		}).
		OrderBy("requested_date", "id")

	return r.selectParcels(ctx, builder, "getbyrequesteddaterange")
}

func (r *Repository) UpdatePending(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.
		Update("parcels")

	// опциональные поля
	if parcelModifyModel.OwnerName != nil {
		builder = builder.Set("owner_name", parcelModifyModel.OwnerName)
	}
	if parcelModifyModel.OwnerEmail != nil {
		builder = builder.Set("owner_email", parcelModifyModel.OwnerEmail)
	}
	if parcelModifyModel.OwnerPhone != nil {
		builder = builder.Set("owner_phone", parcelModifyModel.OwnerPhone)
	}
	if parcelModifyModel.ReceiverName != nil {
		builder = builder.Set("receiver_name", parcelModifyModel.ReceiverName)
	}
	if parcelModifyModel.ReceiverPhone != nil {
		builder = builder.Set("receiver_phone", parcelModifyModel.ReceiverPhone)
	}
	if parcelModifyModel.Address != nil {
		builder = builder.Set("address", parcelModifyModel.Address)
	}
	if parcelModifyModel.Weight != nil {
		builder = builder.Set("weight", parcelModifyModel.Weight)
	}
	if parcelModifyModel.RequestedDate != nil {
		builder = builder.Set("requested_date", parcelModifyModel.RequestedDate)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{
			"id":     parcelModifyModel.ID,
			"status": entities.ParcelPending.String(),
		}).
		Suffix(returningParcel)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		// посылка существовала при чтении, значит ее статус успели сменить
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrConcurrentModification
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %w", service.ErrInvalidWeight, err)
		}
		return nil, repository.Unexpected("unexpected parcel repository update error", err)
	}

	return ToDomain(&parcelModel), nil
}

// UpdateStatus - compare-and-swap по статусу: строка меняется, только если статус все еще from.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	from entities.ParcelStatusType,
	to entities.ParcelStatusType,
) (*entities.Parcel, error) {
	query := `UPDATE parcels
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		` + returningParcel

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, id, from.String(), to.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: parcel %d is no longer %s", service.ErrConcurrentModification, id, from)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %s -> %s", service.ErrTransitionRejected, from, to)
		}
		return nil, repository.Unexpected("unexpected parcel repository updatestatus error", err)
	}

	return ToDomain(&parcelModel), nil
}

// Assign переводит pending посылку в путь и назначает курьера.
// Роль курьера перепроверяется в том же запросе.
func (r *Repository) Assign(ctx context.Context, assignmentEntity entities.ParcelAssignment) (*entities.Parcel, error) {
	query := `UPDATE parcels
		SET status = $3,
			assignee_id = $2,
			approximate_delivery_date = $4,
			updated_at = NOW()
		WHERE id = $1
			AND status = $5
			AND EXISTS (SELECT 1 FROM users WHERE users.id = $2 AND users.role = $6)
		` + returningParcel

	parcelModel, err := scanParcel(r.querier.QueryRow(
		ctx,
		query,
		assignmentEntity.ParcelID,
		assignmentEntity.DeliveryPersonID,
		entities.ParcelOnTheWay.String(),
		assignmentEntity.ApproximateDeliveryDate,
		entities.ParcelPending.String(),
		entities.RoleDeliveryPerson.String(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: parcel %d", assignment.ErrAssignmentConflict, assignmentEntity.ParcelID)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: id %d", assignment.ErrDeliveryPersonNotFound, assignmentEntity.DeliveryPersonID)
		}
		return nil, repository.Unexpected("unexpected parcel repository assign error", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) selectParcels(ctx context.Context, builder sq.SelectBuilder, op string) ([]entities.Parcel, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unexpected("unexpected parcel repository "+op+" error", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		parcelModel, err := scanParcel(rows)
		if err != nil {
			return nil, repository.Unexpected("unexpected parcel repository "+op+" error", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, repository.Unexpected("unexpected parcel repository "+op+" error", err)
	}

	return ToDomainList(parcelModels), nil
}

func scanParcel(row pgx.Row) (ParcelDB, error) {
	var parcelModel ParcelDB
	err := row.Scan(
		&parcelModel.ID,
		&parcelModel.OwnerName,
		&parcelModel.OwnerEmail,
		&parcelModel.OwnerPhone,
		&parcelModel.ReceiverName,
		&parcelModel.ReceiverPhone,
		&parcelModel.Address,
		&parcelModel.Weight,
		&parcelModel.Status,
		&parcelModel.AssigneeID,
		&parcelModel.RequestedDate,
		&parcelModel.BookingDate,
		&parcelModel.ApproximateDeliveryDate,
		&parcelModel.UpdatedAt,
	)
	return parcelModel, err
}
