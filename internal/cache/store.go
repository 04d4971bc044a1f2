package cache

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jadavison91/gametime/internal/metrics"
	"github.com/jadavison91/gametime/internal/models"
)

// Store is the layered game cache: an in-memory tier with a short
// freshness window, a durable JSON file, and a Redis fallback
// key-value store. Reads walk the tiers in that order and the first
// non-empty result wins; tier failures fall through silently. Writes
// go through a single mutex so concurrent saves never interleave.
type Store struct {
	mu       sync.RWMutex
	memory   []models.Game
	memoryAt time.Time

	// lastFetchMem mirrors the Redis last-fetch stamp so staleness
	// checks keep working within a process when Redis is down.
	lastFetchMem time.Time

	memoryTTL  time.Duration
	staleAfter time.Duration

	file     *fileStore
	fallback *redisStore

	now     func() time.Time
	logger  zerolog.Logger
	metrics *metrics.Recorder
}

// Config holds cache store configuration.
type Config struct {
	Dir        string
	MemoryTTL  time.Duration
	StaleAfter time.Duration
}

// NewStore creates the layered store. The Redis client is shared with
// the rest of the process and not closed by the store.
func NewStore(cfg Config, client *redis.Client, logger zerolog.Logger, recorder *metrics.Recorder) *Store {
	memoryTTL := cfg.MemoryTTL
	if memoryTTL <= 0 {
		memoryTTL = time.Minute
	}
	staleAfter := cfg.StaleAfter
	if staleAfter <= 0 {
		staleAfter = 24 * time.Hour
	}

	return &Store{
		memoryTTL:  memoryTTL,
		staleAfter: staleAfter,
		file:       newFileStore(cfg.Dir),
		fallback:   newRedisStore(client, logger),
		now:        time.Now,
		logger:     logger.With().Str("component", "cache_store").Logger(),
		metrics:    recorder,
	}
}

// Save replaces the cached snapshot. The memory tier is updated
// unconditionally; the file tier is attempted next and Redis takes the
// write when the file fails. Any successful durable write stamps the
// last-fetch timestamp.
func (s *Store) Save(ctx context.Context, games []models.Game) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.memory = games
	s.memoryAt = now
	s.lastFetchMem = now

	durable := true
	if err := s.file.save(games); err != nil {
		s.logger.Warn().Err(err).Msg("file cache write failed, falling back to Redis")
		if err := s.fallback.saveGames(ctx, games); err != nil {
			s.logger.Warn().Err(err).Msg("Redis cache write failed")
			durable = false
		}
	}

	if durable {
		if err := s.fallback.stampLastFetch(ctx, now); err != nil {
			s.logger.Warn().Err(err).Msg("failed to stamp last fetch in Redis")
		}
	}
}

// Load returns the cached games, pruned to those starting at or after
// the start of today (UTC). The memory tier is honored only within its
// freshness window; after that the durable tiers are consulted even if
// memory still holds data. An empty result is the only failure signal.
func (s *Store) Load(ctx context.Context) []models.Game {
	now := s.now()
	startOfToday := startOfDayUTC(now)

	s.mu.RLock()
	mem := s.memory
	memAt := s.memoryAt
	s.mu.RUnlock()

	if mem != nil && now.Sub(memAt) < s.memoryTTL {
		if filtered := pruneBefore(mem, startOfToday); len(filtered) > 0 {
			s.metrics.RecordCacheRead("memory")
			return filtered
		}
	}

	if games, err := s.file.load(); err == nil {
		if filtered := pruneBefore(games, startOfToday); len(filtered) > 0 {
			s.setMemory(filtered, now)
			s.metrics.RecordCacheRead("file")
			return filtered
		}
	} else if !os.IsNotExist(err) {
		s.logger.Debug().Err(err).Msg("file cache read failed, trying Redis")
	}

	if games, err := s.fallback.loadGames(ctx); err == nil {
		if filtered := pruneBefore(games, startOfToday); len(filtered) > 0 {
			s.setMemory(filtered, now)
			s.metrics.RecordCacheRead("redis")
			return filtered
		}
	} else {
		s.logger.Debug().Err(err).Msg("Redis cache read failed")
	}

	s.metrics.RecordCacheRead("miss")
	return nil
}

// LastFetch returns when the cache was last populated by a successful
// fetch. The zero time means no fetch has ever been recorded.
func (s *Store) LastFetch(ctx context.Context) time.Time {
	if at, err := s.fallback.lastFetch(ctx); err == nil && !at.IsZero() {
		return at
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastFetchMem
}

// IsStale reports whether the last successful fetch is missing or older
// than the staleness threshold.
func (s *Store) IsStale(ctx context.Context) bool {
	last := s.LastFetch(ctx)
	if last.IsZero() {
		return true
	}
	return s.now().Sub(last) > s.staleAfter
}

// Clear wipes every tier, including the last-fetch stamp.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memory = nil
	s.memoryAt = time.Time{}
	s.lastFetchMem = time.Time{}
	s.file.clear()
	s.fallback.clear(ctx)
}

// InvalidateMemory drops the memory tier so the next Load hits durable
// storage.
func (s *Store) InvalidateMemory() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memory = nil
	s.memoryAt = time.Time{}
}

func (s *Store) setMemory(games []models.Game, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memory = games
	s.memoryAt = at
}

// pruneBefore drops games that started before the cutoff. Today's
// completed games survive; yesterday's do not.
func pruneBefore(games []models.Game, cutoff time.Time) []models.Game {
	filtered := make([]models.Game, 0, len(games))
	for _, g := range games {
		if g.StartTime.Before(cutoff) {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered
}

func startOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
