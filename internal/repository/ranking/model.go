package ranking

type DeliveryPersonStatsDB struct {
	DeliveryPersonID int64
	Name             string
	ProfileImage     string
	DeliveredCount   int64
	RatingSum        int64
	RatingCount      int64
}
