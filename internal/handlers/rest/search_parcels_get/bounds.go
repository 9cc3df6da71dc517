package search_parcels_get

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

const dateOnlyLayout = "2006-01-02"

var ErrInvalidBound = errors.New("invalid date bound")

var utcConfig = &now.Config{
	WeekStartDay: time.Monday,
	TimeLocation: time.UTC,
}

// ParseStart разбирает нижнюю границу. Дата без времени означает начало дня.
// Пустая строка дает нулевое время, отсутствие границы проверяет сервис.
func ParseStart(raw string) (time.Time, error) {
	return parseBound(raw, func(t time.Time) time.Time {
		return utcConfig.With(t).BeginningOfDay()
	})
}

// ParseEnd разбирает верхнюю границу. Дата без времени означает конец дня.
func ParseEnd(raw string) (time.Time, error) {
	return parseBound(raw, func(t time.Time) time.Time {
		return utcConfig.With(t).EndOfDay()
	})
}

func parseBound(raw string, expand func(time.Time) time.Time) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}

	t, err := time.ParseInLocation(dateOnlyLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidBound, raw)
	}
	return expand(t), nil
}
