//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=my_deliveries_get_test
package my_deliveries_get

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
	ListAssignments(ctx context.Context, deliveryPersonID int64) ([]entities.Parcel, error)
	ListAssignmentsByEmail(ctx context.Context, email string) ([]entities.Parcel, error)
}
