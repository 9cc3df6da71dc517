package review

import "time"

type ReviewDB struct {
	ID               int64
	ParcelID         int64
	DeliveryPersonID int64
	ReviewerName     string
	ReviewerEmail    string
	ReviewerImage    string
	Rating           int16
	Feedback         string
	CreatedAt        time.Time
}

type ReviewModifyDB struct {
	ParcelID         *int64
	DeliveryPersonID *int64
	ReviewerName     *string
	ReviewerEmail    *string
	ReviewerImage    *string
	Rating           *int16
	Feedback         *string
}
