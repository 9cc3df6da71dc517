//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ranking_test
package ranking

import (
	"context"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

type Repository interface {
	// GetDeliveryPersonStats читает агрегаты всех курьеров одним запросом, порядок по id.
	GetDeliveryPersonStats(ctx context.Context) ([]entities.DeliveryPersonStats, error)
}

type Cache interface {
	// Get возвращает found=false, если рейтинга в кэше нет или он устарел.
	Get(ctx context.Context, topN int) ([]entities.DeliveryPersonRank, bool, error)
	Set(ctx context.Context, topN int, ranks []entities.DeliveryPersonRank) error
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
