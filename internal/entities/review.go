package entities

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID               int64
	ParcelID         int64
	DeliveryPersonID int64
	ReviewerName     string
	ReviewerEmail    string
	ReviewerImage    string
	Rating           int
	Feedback         string
	CreatedAt        time.Time
}

type ReviewModify struct {
	ParcelID         *int64
	DeliveryPersonID *int64
	ReviewerName     *string
	ReviewerEmail    *string
	ReviewerImage    *string
	Rating           *int
	Feedback         *string
}
