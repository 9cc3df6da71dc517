//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_test
package review

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, reviewModify entities.ReviewModify) (*entities.Review, error)
	GetByDeliveryPerson(ctx context.Context, deliveryPersonID int64) ([]entities.Review, error)
}

type ParcelRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
