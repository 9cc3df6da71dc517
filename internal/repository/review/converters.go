package review

import (
	"parcel-service/internal/entities"
)

func ToDomain(r *ReviewDB) *entities.Review {
	if r == nil {
		return nil
	}

	return &entities.Review{
		ID:               r.ID,
		ParcelID:         r.ParcelID,
		DeliveryPersonID: r.DeliveryPersonID,
		ReviewerName:     r.ReviewerName,
		ReviewerEmail:    r.ReviewerEmail,
		ReviewerImage:    r.ReviewerImage,
		Rating:           int(r.Rating),
		Feedback:         r.Feedback,
		CreatedAt:        r.CreatedAt.UTC(),
	}
}

func FromDomainModify(reviewModify *entities.ReviewModify) *ReviewModifyDB {
	if reviewModify == nil {
		return nil
	}

	reviewDB := &ReviewModifyDB{
		ParcelID:         reviewModify.ParcelID,
		DeliveryPersonID: reviewModify.DeliveryPersonID,
		ReviewerName:     reviewModify.ReviewerName,
		ReviewerEmail:    reviewModify.ReviewerEmail,
		ReviewerImage:    reviewModify.ReviewerImage,
		Feedback:         reviewModify.Feedback,
	}
	if reviewModify.Rating != nil {
		rating := int16(*reviewModify.Rating)
		reviewDB.Rating = &rating
	}
	return reviewDB
}

func ToDomainList(reviewsDB []ReviewDB) []entities.Review {
	if len(reviewsDB) == 0 {
		return []entities.Review{}
	}

	result := make([]entities.Review, len(reviewsDB))
	for i := range reviewsDB {
		result[i] = *ToDomain(&reviewsDB[i])
	}
	return result
}
