package review

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	service "parcel-service/internal/service/review"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error) {
	reviewModifyModel := FromDomainModify(&reviewModifyEntity)
	query := `INSERT INTO reviews (parcel_id, delivery_person_id, reviewer_name, reviewer_email,
			reviewer_image, rating, feedback)
		VALUES ($1, $2, $3, $4, COALESCE($5::text, ''), $6, COALESCE($7::text, ''))
		RETURNING id, parcel_id, delivery_person_id, reviewer_name, reviewer_email,
			reviewer_image, rating, feedback, created_at`

	reviewModel, err := scanReview(r.querier.QueryRow(
		ctx,
		query,
		reviewModifyModel.ParcelID,
		reviewModifyModel.DeliveryPersonID,
		reviewModifyModel.ReviewerName,
		reviewModifyModel.ReviewerEmail,
		reviewModifyModel.ReviewerImage,
		reviewModifyModel.Rating,
		reviewModifyModel.Feedback,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("%w: parcel %d", service.ErrReviewAlreadyExists, *reviewModifyEntity.ParcelID)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, service.ErrInvalidRating
		}
		return nil, repository.Unexpected("unexpected review repository create error", err)
	}

	return ToDomain(&reviewModel), nil
}

func (r *Repository) GetByDeliveryPerson(ctx context.Context, deliveryPersonID int64) ([]entities.Review, error) {
	query := `SELECT id, parcel_id, delivery_person_id, reviewer_name, reviewer_email,
			reviewer_image, rating, feedback, created_at
		FROM reviews
		WHERE delivery_person_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, deliveryPersonID)
	if err != nil {
		return nil, repository.Unexpected("unexpected review repository getbydeliveryperson error", err)
	}
	defer rows.Close()

	reviewModels := make([]ReviewDB, 0, 8)
	for rows.Next() {
		reviewModel, err := scanReview(rows)
		if err != nil {
			return nil, repository.Unexpected("unexpected review repository getbydeliveryperson error", err)
		}
		reviewModels = append(reviewModels, reviewModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, repository.Unexpected("unexpected review repository getbydeliveryperson error", err)
	}

	return ToDomainList(reviewModels), nil
}

func scanReview(row pgx.Row) (ReviewDB, error) {
	var reviewModel ReviewDB
	err := row.Scan(
		&reviewModel.ID,
		&reviewModel.ParcelID,
		&reviewModel.DeliveryPersonID,
		&reviewModel.ReviewerName,
		&reviewModel.ReviewerEmail,
		&reviewModel.ReviewerImage,
		&reviewModel.Rating,
		&reviewModel.Feedback,
		&reviewModel.CreatedAt,
	)
	return reviewModel, err
}
