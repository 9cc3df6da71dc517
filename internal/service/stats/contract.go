//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	CountParcels(ctx context.Context) (int64, error)
	CountParcelsByStatus(ctx context.Context, status entities.ParcelStatusType) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	GetBookingsByDate(ctx context.Context) ([]entities.DailyBookings, error)
}

type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
