package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadavison91/gametime/internal/models"
)

var fixedNow = time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

type testServer struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []string
	// responses maps "<sport>/<league>/<yyyyMMdd>" to a scoreboard body;
	// missing entries return an empty scoreboard
	responses map[string]scoreboardResponse
	failures  map[string]int // paths answered with this status code
}

func setupTestServer(t *testing.T) *testServer {
	ts := &testServer{
		responses: make(map[string]scoreboardResponse),
		failures:  make(map[string]int),
	}
	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// "/basketball/nba/scoreboard?dates=20260131" -> "basketball/nba/20260131"
		path := strings.TrimPrefix(r.URL.Path, "/")
		key := strings.Replace(path, "/scoreboard", "", 1) + "/" + r.URL.Query().Get("dates")

		ts.mu.Lock()
		ts.requests = append(ts.requests, key)
		sb, ok := ts.responses[key]
		code, failed := ts.failures[key]
		ts.mu.Unlock()

		if failed {
			w.WriteHeader(code)
			return
		}
		if !ok {
			sb = scoreboardResponse{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sb)
	}))
	t.Cleanup(ts.server.Close)
	return ts
}

func setupTestClient(t *testing.T, ts *testServer, windowDays int) *Client {
	client := NewClient(Config{
		BaseURL:       ts.server.URL,
		WindowDays:    windowDays,
		MaxConcurrent: 2,
		HTTPClient:    ts.server.Client(),
	}, zerolog.Nop(), nil)
	client.now = func() time.Time { return fixedNow }
	return client
}

func testEvent(id, homeAbbr, awayAbbr, date string) event {
	return event{
		ID:   id,
		Date: date,
		Competitions: []competition{{
			Competitors: []competitor{
				{HomeAway: "home", Team: teamInfo{DisplayName: homeAbbr, Abbreviation: homeAbbr}},
				{HomeAway: "away", Team: teamInfo{DisplayName: awayAbbr, Abbreviation: awayAbbr}},
			},
		}},
		Status: &eventStatus{Type: &statusType{State: "pre"}},
	}
}

// TestFetchGamesForTeams_GroupsByLeague tests that each league/date pair
// is queried exactly once regardless of followed-team count
func TestFetchGamesForTeams_GroupsByLeague(t *testing.T) {
	ts := setupTestServer(t)
	client := setupTestClient(t, ts, 2)

	teams := []models.Team{
		{Abbreviation: "LAL", League: "nba", Sport: "basketball"},
		{Abbreviation: "BOS", League: "nba", Sport: "basketball"},
		{Abbreviation: "BOS", League: "nhl", Sport: "hockey"},
	}

	_, err := client.FetchGamesForTeams(context.Background(), teams)
	require.NoError(t, err)

	// 2 leagues x 2 dates = 4 queries, never one per team
	ts.mu.Lock()
	defer ts.mu.Unlock()
	assert.Len(t, ts.requests, 4)
	counts := make(map[string]int)
	for _, req := range ts.requests {
		counts[req]++
	}
	assert.Equal(t, 1, counts["basketball/nba/20260131"])
	assert.Equal(t, 1, counts["basketball/nba/20260201"])
	assert.Equal(t, 1, counts["hockey/nhl/20260131"])
	assert.Equal(t, 1, counts["hockey/nhl/20260201"])
}

// TestFetchGamesForTeams_TwoPerspectives tests that one event involving
// two followed teams yields one record per team
func TestFetchGamesForTeams_TwoPerspectives(t *testing.T) {
	ts := setupTestServer(t)
	client := setupTestClient(t, ts, 1)

	ts.responses["basketball/nba/20260131"] = scoreboardResponse{
		Events: []event{testEvent("401", "BOS", "LAL", "2026-01-31T19:30:00Z")},
	}

	teams := []models.Team{
		{Abbreviation: "LAL", League: "nba", Sport: "basketball"},
		{Abbreviation: "BOS", League: "nba", Sport: "basketball"},
	}

	games, err := client.FetchGamesForTeams(context.Background(), teams)
	require.NoError(t, err)
	require.Len(t, games, 2)

	subjects := map[string]bool{}
	for _, g := range games {
		assert.Equal(t, "401", g.ID)
		subjects[g.SubjectAbbreviation] = true
	}
	assert.True(t, subjects["LAL"])
	assert.True(t, subjects["BOS"])

	// Only LAL's record is a road game
	for _, g := range games {
		if g.SubjectAbbreviation == "BOS" {
			assert.True(t, g.IsHomeGame)
		} else {
			assert.False(t, g.IsHomeGame)
		}
	}
}

// TestFetchGamesForTeams_PartialFailure tests that one failing date does
// not discard results from the others
func TestFetchGamesForTeams_PartialFailure(t *testing.T) {
	ts := setupTestServer(t)
	client := setupTestClient(t, ts, 2)

	ts.responses["basketball/nba/20260201"] = scoreboardResponse{
		Events: []event{testEvent("402", "LAL", "GSW", "2026-02-01T03:00:00Z")},
	}
	ts.failures["basketball/nba/20260131"] = http.StatusInternalServerError

	teams := []models.Team{{Abbreviation: "LAL", League: "nba", Sport: "basketball"}}

	games, err := client.FetchGamesForTeams(context.Background(), teams)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "402", games[0].ID)
}

// TestFetchGamesForTeams_AllFailed tests that an error surfaces only
// when every query fails
func TestFetchGamesForTeams_AllFailed(t *testing.T) {
	ts := setupTestServer(t)
	client := setupTestClient(t, ts, 2)

	ts.failures["basketball/nba/20260131"] = http.StatusServiceUnavailable
	ts.failures["basketball/nba/20260201"] = http.StatusServiceUnavailable

	teams := []models.Team{{Abbreviation: "LAL", League: "nba", Sport: "basketball"}}

	games, err := client.FetchGamesForTeams(context.Background(), teams)
	assert.Error(t, err)
	assert.Nil(t, games)
}

// TestFetchGamesForTeams_DropsPriorDays tests that events starting
// before today's UTC midnight never come back
func TestFetchGamesForTeams_DropsPriorDays(t *testing.T) {
	ts := setupTestServer(t)
	client := setupTestClient(t, ts, 1)

	ts.responses["basketball/nba/20260131"] = scoreboardResponse{
		Events: []event{
			testEvent("400", "LAL", "DEN", "2026-01-30T19:30:00Z"),
			testEvent("401", "LAL", "BOS", "2026-01-31T19:30:00Z"),
		},
	}

	teams := []models.Team{{Abbreviation: "LAL", League: "nba", Sport: "basketball"}}

	games, err := client.FetchGamesForTeams(context.Background(), teams)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "401", games[0].ID)
}

// TestFetchGamesForTeams_SortedByStartTime tests the start-time ordering
func TestFetchGamesForTeams_SortedByStartTime(t *testing.T) {
	ts := setupTestServer(t)
	client := setupTestClient(t, ts, 2)

	ts.responses["basketball/nba/20260131"] = scoreboardResponse{
		Events: []event{testEvent("401", "LAL", "BOS", "2026-01-31T19:30:00Z")},
	}
	ts.responses["basketball/nba/20260201"] = scoreboardResponse{
		Events: []event{testEvent("402", "GSW", "LAL", "2026-02-01T02:00:00Z")},
	}

	teams := []models.Team{{Abbreviation: "LAL", League: "nba", Sport: "basketball"}}

	games, err := client.FetchGamesForTeams(context.Background(), teams)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "401", games[0].ID)
	assert.Equal(t, "402", games[1].ID)
}

// TestFetchGamesForTeams_NoTeams tests the empty-selection short circuit
func TestFetchGamesForTeams_NoTeams(t *testing.T) {
	ts := setupTestServer(t)
	client := setupTestClient(t, ts, 2)

	games, err := client.FetchGamesForTeams(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, games)
	assert.Empty(t, ts.requests)
}

// TestFetchLeagueGames tests the today-only leaguewide fetch
func TestFetchLeagueGames(t *testing.T) {
	ts := setupTestServer(t)
	client := setupTestClient(t, ts, 7)

	ts.responses["basketball/nba/20260131"] = scoreboardResponse{
		Events: []event{
			testEvent("401", "BOS", "NYK", "2026-01-31T19:30:00Z"),
			testEvent("402", "MIA", "ORL", "2026-01-31T23:00:00Z"),
		},
	}

	games, err := client.FetchLeagueGames(context.Background(), "basketball", "nba")
	require.NoError(t, err)
	require.Len(t, games, 2)

	// Leaguewide records carry no subject team
	for _, g := range games {
		assert.Empty(t, g.SubjectAbbreviation)
		assert.False(t, g.IsHomeGame)
	}

	// Only today's scoreboard was queried
	ts.mu.Lock()
	defer ts.mu.Unlock()
	require.Len(t, ts.requests, 1)
	assert.Equal(t, "basketball/nba/20260131", ts.requests[0])
}

// TestFetchLeagueGames_Error tests that leaguewide failures propagate
func TestFetchLeagueGames_Error(t *testing.T) {
	ts := setupTestServer(t)
	client := setupTestClient(t, ts, 7)

	ts.failures["basketball/nba/20260131"] = http.StatusBadGateway

	games, err := client.FetchLeagueGames(context.Background(), "basketball", "nba")
	assert.Error(t, err)
	assert.Nil(t, games)
	assert.Contains(t, fmt.Sprint(err), "unexpected status 502")
}
