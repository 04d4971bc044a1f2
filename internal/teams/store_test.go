package teams

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadavison91/gametime/internal/models"
)

func setupTestTeamStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mini, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStore(client, zerolog.Nop()), mini
}

// TestStore_FollowedEmpty tests that a missing key is an empty selection
func TestStore_FollowedEmpty(t *testing.T) {
	store, _ := setupTestTeamStore(t)

	followed, err := store.Followed(context.Background())

	require.NoError(t, err)
	assert.Nil(t, followed)
}

// TestStore_SetAndGetFollowed tests the selection round trip
func TestStore_SetAndGetFollowed(t *testing.T) {
	store, _ := setupTestTeamStore(t)
	ctx := context.Background()

	selection := []models.Team{
		{ID: "13", Name: "Los Angeles Lakers", Abbreviation: "LAL", Sport: "basketball", League: "nba"},
		{ID: "2", Name: "Boston Celtics", Abbreviation: "BOS", Sport: "basketball", League: "nba"},
	}

	require.NoError(t, store.SetFollowed(ctx, selection))

	followed, err := store.Followed(ctx)
	require.NoError(t, err)
	require.Len(t, followed, 2)

	// Order is preserved
	assert.Equal(t, "LAL", followed[0].Abbreviation)
	assert.Equal(t, "BOS", followed[1].Abbreviation)
}

// TestStore_SetReplacesSelection tests that SetFollowed is a replace,
// not a merge
func TestStore_SetReplacesSelection(t *testing.T) {
	store, _ := setupTestTeamStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetFollowed(ctx, []models.Team{
		{Abbreviation: "LAL", League: "nba", Sport: "basketball"},
	}))
	require.NoError(t, store.SetFollowed(ctx, []models.Team{
		{Abbreviation: "BOS", League: "nba", Sport: "basketball"},
	}))

	followed, err := store.Followed(ctx)
	require.NoError(t, err)
	require.Len(t, followed, 1)
	assert.Equal(t, "BOS", followed[0].Abbreviation)
}

// TestStore_Clear tests dropping the selection
func TestStore_Clear(t *testing.T) {
	store, mini := setupTestTeamStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetFollowed(ctx, []models.Team{
		{Abbreviation: "LAL", League: "nba", Sport: "basketball"},
	}))
	require.NoError(t, store.Clear(ctx))

	assert.False(t, mini.Exists(keyFollowedTeams))

	followed, err := store.Followed(ctx)
	require.NoError(t, err)
	assert.Nil(t, followed)
}
