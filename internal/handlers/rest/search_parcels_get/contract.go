//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=search_parcels_get_test
package search_parcels_get

import (
	"context"
	"time"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SearchByDateRange(ctx context.Context, start time.Time, end time.Time) ([]entities.Parcel, error)
}
