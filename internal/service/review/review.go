package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"parcel-service/internal/entities"
	"parcel-service/internal/pkg/errs"
	"parcel-service/pkg/tx"
)

type Review struct {
	repository       Repository
	parcelRepository ParcelRepository
	txManager        TxManager
}

func New(repository Repository, parcelRepository ParcelRepository, txManager TxManager) *Review {
	return &Review{
		repository:       repository,
		parcelRepository: parcelRepository,
		txManager:        txManager,
	}
}

// CreateReview сохраняет отзыв о доставленной посылке.
// Курьер берется из посылки, значение клиента игнорируется.
func (r *Review) CreateReview(ctx context.Context, reviewModify entities.ReviewModify) (*entities.Review, error) {
	if err := validateReview(reviewModify); err != nil {
		return nil, err
	}

	reviewerEmail := strings.TrimSpace(*reviewModify.ReviewerEmail)
	reviewModify.ReviewerEmail = &reviewerEmail

	var created *entities.Review
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := r.parcelRepository.GetByID(ctx, *reviewModify.ParcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}

		if parcel.Status != entities.ParcelDelivered || parcel.AssigneeID == nil {
			return fmt.Errorf("%w: parcel %d is %s", ErrParcelNotDelivered, parcel.ID, parcel.Status)
		}
		if parcel.OwnerEmail != reviewerEmail {
			return fmt.Errorf("%w: parcel %d", ErrReviewerNotOwner, parcel.ID)
		}

		reviewModify.DeliveryPersonID = parcel.AssigneeID

		created, err = r.repository.Create(ctx, reviewModify)
		if err != nil {
			return fmt.Errorf("create review: %w", err)
		}
		return nil
	})
	if err != nil {
		// коммит сериализуемой транзакции проиграл параллельному отзыву
		if tx.IsSerializationFailure(err) && !errors.Is(err, errs.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConcurrentReview, err)
		}
		return nil, err
	}
	return created, nil
}

func (r *Review) GetReviewsByDeliveryPerson(ctx context.Context, deliveryPersonID int64) ([]entities.Review, error) {
	if !isValidID(deliveryPersonID) {
		return nil, ErrInvalidDeliveryPersonID
	}

	reviews, err := r.repository.GetByDeliveryPerson(ctx, deliveryPersonID)
	if err != nil {
		return nil, fmt.Errorf("get reviews by delivery person: %w", err)
	}
	return reviews, nil
}
