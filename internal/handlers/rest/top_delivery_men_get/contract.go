//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=top_delivery_men_get_test
package top_delivery_men_get

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
	TopDeliveryPersons(ctx context.Context) ([]entities.DeliveryPersonRank, error)
}
