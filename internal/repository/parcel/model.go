package parcel

import "time"

type ParcelDB struct {
	ID                      int64
	OwnerName               string
	OwnerEmail              string
	OwnerPhone              string
	ReceiverName            string
	ReceiverPhone           string
	Address                 string
	Weight                  float64
	Status                  string
	AssigneeID              *int64
	RequestedDate           time.Time
	BookingDate             time.Time
	ApproximateDeliveryDate *time.Time
	UpdatedAt               time.Time
}

type ParcelModifyDB struct {
	ID            *int64
	OwnerName     *string
	OwnerEmail    *string
	OwnerPhone    *string
	ReceiverName  *string
	ReceiverPhone *string
	Address       *string
	Weight        *float64
	RequestedDate *time.Time
	Status        *string
	BookingDate   *time.Time
}
