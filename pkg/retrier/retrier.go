package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// RetryNotifyFunc вызывается перед каждым повтором: номер неудачной попытки и пауза до следующей.
type RetryNotifyFunc func(err error, attempt uint64, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil - ретраятся все ошибки, иначе только те, для которых функция вернула true
	ShouldRetry ShouldRetryFunc
	OnRetry     RetryNotifyFunc
}
