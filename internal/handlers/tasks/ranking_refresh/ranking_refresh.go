package ranking_refresh

//go:generate mockgen -source=ranking_refresh.go -destination=./contract_mocks_test.go -package=ranking_refresh_test

import (
	"context"
	"time"

	"parcel-service/pkg/logger"
)

type Service interface {
	RefreshRanking(ctx context.Context) (int, error)
}

type taskLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// RankingRefresh пересчитывает топ курьеров и кладет его в кэш до истечения TTL записи.
type RankingRefresh struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewRankingRefresh(log taskLogger, service Service, interval time.Duration) *RankingRefresh {
	return &RankingRefresh{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *RankingRefresh) TTL() time.Duration {
	return r.interval
}

func (r *RankingRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	ranked, err := r.service.RefreshRanking(ctxWithTimeout)
	if err != nil {
		return err
	}

	r.log.With(
		logger.NewField("ranked_delivery_persons", ranked),
	).Debug("ranking refreshed")

	return nil
}

func (r *RankingRefresh) Info() string {
	return "ranking refresh"
}
