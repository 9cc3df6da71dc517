//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cancel_parcel_put_test
package cancel_parcel_put

import (
	"context"

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
	CancelParcel(ctx context.Context, id int64) (*entities.Parcel, error)
}
