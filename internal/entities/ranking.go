package entities

// DeliveryPersonStats - агрегаты по одному курьеру, прочитанные одним запросом.
type DeliveryPersonStats struct {
	DeliveryPersonID int64
	Name             string
	ProfileImage     string
	DeliveredCount   int64
	RatingSum        int64
	RatingCount      int64
}

type DeliveryPersonRank struct {
	DeliveryPersonID int64
	Name             string
	ProfileImage     string
	DeliveredCount   int64
	AverageRating    float64
}
