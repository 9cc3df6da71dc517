//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModify entities.ParcelModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	GetAll(ctx context.Context) ([]entities.Parcel, error)
	GetByOwnerEmail(ctx context.Context, email string) ([]entities.Parcel, error)
	GetByRequestedDateRange(ctx context.Context, start time.Time, end time.Time) ([]entities.Parcel, error)

	// UpdatePending меняет поля посылки только если она все еще в статусе pending.
	UpdatePending(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
	// UpdateStatus переводит посылку из статуса from в to одним условным UPDATE.
	UpdateStatus(ctx context.Context, id int64, from entities.ParcelStatusType, to entities.ParcelStatusType) (*entities.Parcel, error)
}
