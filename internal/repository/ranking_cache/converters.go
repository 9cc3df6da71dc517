package ranking_cache

import (
	"parcel-service/internal/entities"
)

func ToDomainList(ranksCache []DeliveryPersonRankCache) []entities.DeliveryPersonRank {
	result := make([]entities.DeliveryPersonRank, len(ranksCache))
	for i, r := range ranksCache {
		result[i] = entities.DeliveryPersonRank{
			DeliveryPersonID: r.DeliveryPersonID,
			Name:             r.Name,
			ProfileImage:     r.ProfileImage,
			DeliveredCount:   r.DeliveredCount,
			AverageRating:    r.AverageRating,
		}
	}
	return result
}

func FromDomainList(ranks []entities.DeliveryPersonRank) []DeliveryPersonRankCache {
	result := make([]DeliveryPersonRankCache, len(ranks))
	for i, r := range ranks {
		result[i] = DeliveryPersonRankCache{
			DeliveryPersonID: r.DeliveryPersonID,
			Name:             r.Name,
			ProfileImage:     r.ProfileImage,
			DeliveredCount:   r.DeliveredCount,
			AverageRating:    r.AverageRating,
		}
	}
	return result
}
