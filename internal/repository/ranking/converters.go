package ranking

import (
	"parcel-service/internal/entities"
)

func ToDomainList(statsDB []DeliveryPersonStatsDB) []entities.DeliveryPersonStats {
	if len(statsDB) == 0 {
		return []entities.DeliveryPersonStats{}
	}

	result := make([]entities.DeliveryPersonStats, len(statsDB))
	for i, s := range statsDB {
		result[i] = entities.DeliveryPersonStats{
			DeliveryPersonID: s.DeliveryPersonID,
			Name:             s.Name,
			ProfileImage:     s.ProfileImage,
			DeliveredCount:   s.DeliveredCount,
			RatingSum:        s.RatingSum,
			RatingCount:      s.RatingCount,
		}
	}
	return result
}
