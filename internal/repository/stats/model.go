package stats

import "time"

type DailyBookingsDB struct {
	Day   time.Time
	Count int64
}
