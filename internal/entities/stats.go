package entities

import "time"

type Stats struct {
	Booked         int64
	Delivered      int64
	Users          int64
	BookingsByDate []DailyBookings
}

type DailyBookings struct {
	Date  time.Time
	Count int64
}
