package teams

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jadavison91/gametime/internal/models"
)

const keyFollowedTeams = "gametime:followed_teams"

// Store persists the user's followed-team selection through the shared
// key-value store. One device holds one selection list; the storage
// mechanism is opaque to the rest of the service.
type Store struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewStore creates a followed-team store on the shared Redis client.
func NewStore(client *redis.Client, logger zerolog.Logger) *Store {
	return &Store{
		client: client,
		logger: logger.With().Str("component", "teams_store").Logger(),
	}
}

// Followed returns the current selection in the order it was saved.
// A missing key is an empty selection, not an error.
func (s *Store) Followed(ctx context.Context) ([]models.Team, error) {
	data, err := s.client.Get(ctx, keyFollowedTeams).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get followed teams: %w", err)
	}

	var teams []models.Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("failed to unmarshal followed teams: %w", err)
	}
	return teams, nil
}

// SetFollowed replaces the selection.
func (s *Store) SetFollowed(ctx context.Context, teams []models.Team) error {
	data, err := json.Marshal(teams)
	if err != nil {
		return fmt.Errorf("failed to marshal followed teams: %w", err)
	}
	if err := s.client.Set(ctx, keyFollowedTeams, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set followed teams: %w", err)
	}

	s.logger.Info().Int("count", len(teams)).Msg("followed teams updated")
	return nil
}

// Clear drops the selection.
func (s *Store) Clear(ctx context.Context) error {
	return s.client.Del(ctx, keyFollowedTeams).Err()
}
