package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jadavison91/gametime/internal/models"
)

const (
	keyCachedGames = "gametime:cached_games"
	keyLastFetch   = "gametime:last_fetch"
)

// redisStore is the fallback key-value tier. It also holds the
// last-fetch timestamp that drives staleness checks.
type redisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

func newRedisStore(client *redis.Client, logger zerolog.Logger) *redisStore {
	return &redisStore{
		client: client,
		logger: logger.With().Str("component", "redis_store").Logger(),
	}
}

func (s *redisStore) saveGames(ctx context.Context, games []models.Game) error {
	data, err := json.Marshal(games)
	if err != nil {
		return fmt.Errorf("failed to marshal games: %w", err)
	}
	if err := s.client.Set(ctx, keyCachedGames, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}
	return nil
}

func (s *redisStore) loadGames(ctx context.Context) ([]models.Game, error) {
	data, err := s.client.Get(ctx, keyCachedGames).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var games []models.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("failed to unmarshal games: %w", err)
	}
	return games, nil
}

func (s *redisStore) stampLastFetch(ctx context.Context, at time.Time) error {
	return s.client.Set(ctx, keyLastFetch, at.UTC().Format(time.RFC3339Nano), 0).Err()
}

func (s *redisStore) lastFetch(ctx context.Context) (time.Time, error) {
	raw, err := s.client.Get(ctx, keyLastFetch).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	} else if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, raw)
}

func (s *redisStore) clear(ctx context.Context) {
	if err := s.client.Del(ctx, keyCachedGames, keyLastFetch).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear Redis cache keys")
	}
}
