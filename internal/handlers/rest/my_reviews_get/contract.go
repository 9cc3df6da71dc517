//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=my_reviews_get_test
package my_reviews_get

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
	GetReviewsByDeliveryPerson(ctx context.Context, deliveryPersonID int64) ([]entities.Review, error)
}
