package ranking

import (
	"context"

	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetDeliveryPersonStats возвращает агрегаты по всем курьерам одним запросом,
// поэтому количество доставок и отзывы видны из одного снимка.
func (r *Repository) GetDeliveryPersonStats(ctx context.Context) ([]entities.DeliveryPersonStats, error) {
	query := `
	SELECT u.id,
		u.name,
		u.profile_image,
		COALESCE(d.delivered_count, 0),
		COALESCE(rv.rating_sum, 0),
		COALESCE(rv.rating_count, 0)
	FROM users u
	LEFT JOIN (
		SELECT assignee_id, COUNT(*) AS delivered_count
		FROM parcels
		WHERE status = $2
		GROUP BY assignee_id
	) d ON d.assignee_id = u.id
	LEFT JOIN (
		SELECT delivery_person_id, SUM(rating)::BIGINT AS rating_sum, COUNT(*) AS rating_count
		FROM reviews
		GROUP BY delivery_person_id
	) rv ON rv.delivery_person_id = u.id
	WHERE u.role = $1
	ORDER BY u.id`

	rows, err := r.querier.Query(ctx, query, entities.RoleDeliveryPerson.String(), entities.ParcelDelivered.String())
	if err != nil {
		return nil, repository.Unexpected("unexpected ranking repository getdeliverypersonstats error", err)
	}
	defer rows.Close()

	statsModels := make([]DeliveryPersonStatsDB, 0, 8)
	for rows.Next() {
		var statsModel DeliveryPersonStatsDB
		err := rows.Scan(
			&statsModel.DeliveryPersonID,
			&statsModel.Name,
			&statsModel.ProfileImage,
			&statsModel.DeliveredCount,
			&statsModel.RatingSum,
			&statsModel.RatingCount,
		)
		if err != nil {
			return nil, repository.Unexpected("unexpected ranking repository getdeliverypersonstats error", err)
		}
		statsModels = append(statsModels, statsModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, repository.Unexpected("unexpected ranking repository getdeliverypersonstats error", err)
	}

	return ToDomainList(statsModels), nil
}
