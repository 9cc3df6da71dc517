package ranking_cache

type DeliveryPersonRankCache struct {
	DeliveryPersonID int64   `json:"delivery_person_id"`
	Name             string  `json:"name"`
	ProfileImage     string  `json:"profile_image"`
	DeliveredCount   int64   `json:"delivered_count"`
	AverageRating    float64 `json:"average_rating"`
}
