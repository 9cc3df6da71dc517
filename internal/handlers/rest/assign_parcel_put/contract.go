//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assign_parcel_put_test
package assign_parcel_put

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
	AssignParcel(ctx context.Context, assignment entities.ParcelAssignment) (*entities.Parcel, error)
}
