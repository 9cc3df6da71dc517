//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=book_parcel_post_test
package book_parcel_post

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
	BookParcel(ctx context.Context, parcelModify entities.ParcelModify) (int64, error)
}
