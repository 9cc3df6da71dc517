package ranking

import (
	"context"
	"fmt"
	"sort"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

type Ranking struct {
	log        serviceLogger
	repository Repository
	cache      Cache
	topN       int
}

func New(log serviceLogger, repository Repository, cache Cache, topN int) *Ranking {
	return &Ranking{
		log:        log.With(logger.NewField("component", "ranking")),
		repository: repository,
		cache:      cache,
		topN:       topN,
	}
}

// TopDeliveryPersons отдает рейтинг из кэша, при промахе или ошибке кэша считает его заново.
// Ошибки кэша только логируются.
func (r *Ranking) TopDeliveryPersons(ctx context.Context) ([]entities.DeliveryPersonRank, error) {
	if r.topN <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTopN, r.topN)
	}

	cached, found, err := r.cache.Get(ctx, r.topN)
	switch {
	case err != nil:
		RankingCacheRequestsTotal.WithLabelValues(cacheError).Inc()
		r.log.Warn("read ranking cache", logger.NewField("error", err))
	case found:
		RankingCacheRequestsTotal.WithLabelValues(cacheHit).Inc()
		return cached, nil
	default:
		RankingCacheRequestsTotal.WithLabelValues(cacheMiss).Inc()
	}

	ranks, err := r.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, r.topN, ranks); err != nil {
		r.log.Warn("write ranking cache", logger.NewField("error", err))
	}
	return ranks, nil
}

// RefreshRanking пересчитывает рейтинг и перезаписывает кэш.
func (r *Ranking) RefreshRanking(ctx context.Context) (int, error) {
	if r.topN <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTopN, r.topN)
	}

	ranks, err := r.compute(ctx)
	if err != nil {
		return 0, err
	}

	if err := r.cache.Set(ctx, r.topN, ranks); err != nil {
		return 0, fmt.Errorf("write ranking cache: %w", err)
	}
	return len(ranks), nil
}

func (r *Ranking) compute(ctx context.Context) ([]entities.DeliveryPersonRank, error) {
	stats, err := r.repository.GetDeliveryPersonStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get delivery person stats: %w", err)
	}
	return Rank(stats, r.topN), nil
}

// Rank считает средний рейтинг и сортирует курьеров по (доставлено, средний рейтинг) по убыванию.
// Сортировка стабильная: при равенстве сохраняется порядок входа.
func Rank(stats []entities.DeliveryPersonStats, topN int) []entities.DeliveryPersonRank {
	ranks := make([]entities.DeliveryPersonRank, 0, len(stats))
	for _, s := range stats {
		ranks = append(ranks, entities.DeliveryPersonRank{
			DeliveryPersonID: s.DeliveryPersonID,
			Name:             s.Name,
			ProfileImage:     s.ProfileImage,
			DeliveredCount:   s.DeliveredCount,
			AverageRating:    averageRating(s.RatingSum, s.RatingCount),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].DeliveredCount != ranks[j].DeliveredCount {
			return ranks[i].DeliveredCount > ranks[j].DeliveredCount
		}
		return ranks[i].AverageRating > ranks[j].AverageRating
	})

	if topN >= 0 && len(ranks) > topN {
		ranks = ranks[:topN]
	}
	return ranks
}

func averageRating(sum int64, count int64) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
