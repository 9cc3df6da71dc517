package ranking_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"parcel-service/internal/entities"
)

const keyPrefix = "ranking:top:"

type Repository struct {
	client Client
	ttl    time.Duration
}

// New создает кэш рейтинга, ttl ограничивает устаревание данных.
func New(client Client, ttl time.Duration) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
	}
}

func Key(topN int) string {
	return keyPrefix + strconv.Itoa(topN)
}

func (r *Repository) Get(ctx context.Context, topN int) ([]entities.DeliveryPersonRank, bool, error) {
	key := Key(topN)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get ranking %s from redis: %w", key, err)
	}

	var ranksCache []DeliveryPersonRankCache
	if err := json.Unmarshal(data, &ranksCache); err != nil {
		// битую запись удаляем, следующий Set ее перезапишет
		if delErr := r.client.Del(ctx, key).Err(); delErr != nil {
			return nil, false, fmt.Errorf("delete corrupted ranking %s: %w", key, errors.Join(err, delErr))
		}
		return nil, false, fmt.Errorf("unmarshal ranking %s: %w", key, err)
	}

	return ToDomainList(ranksCache), true, nil
}

func (r *Repository) Set(ctx context.Context, topN int, ranks []entities.DeliveryPersonRank) error {
	key := Key(topN)

	data, err := json.Marshal(FromDomainList(ranks))
	if err != nil {
		return fmt.Errorf("marshal ranking %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("set ranking %s to redis: %w", key, err)
	}
	return nil
}
