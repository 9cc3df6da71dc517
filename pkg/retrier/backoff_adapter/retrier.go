package backoff_adapter

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"parcel-service/pkg/retrier"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

// ExecuteWithContext повторяет fn по экспоненциальному расписанию, пока она не
// вернет nil, не закончится MaxElapsedTime или ctx.
// Ошибка, отвергнутая ShouldRetry, возвращается сразу и без обертки backoff.
func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	policy := backoff.WithContext(r.newPolicy(), ctx)

	var attempt uint64
	operation := func() error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		if r.config.OnRetry != nil {
			r.config.OnRetry(err, attempt, next)
		}
	}

	err := backoff.RetryNotify(operation, policy, notify)
	if err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			return permanent.Err
		}
		return err
	}
	return nil
}

func (r *Retrier) newPolicy() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
}
