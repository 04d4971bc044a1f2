package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jadavison91/gametime/internal/models"
	"github.com/jadavison91/gametime/pkg/selection"
)

var (
	// ErrNoTeamsSelected is returned when the followed-team set is
	// empty. No network access is attempted in that case.
	ErrNoTeamsSelected = errors.New("no teams selected")

	// ErrFetchFailed is returned when a refresh fails and no cached
	// fallback exists.
	ErrFetchFailed = errors.New("scoreboard fetch failed")
)

// ScheduleService orchestrates fetches, cache access, and the display
// logic that decides which games are worth surfacing.
type ScheduleService struct {
	fetcher      Fetcher
	store        Store
	recentWindow time.Duration
	now          func() time.Time
	logger       zerolog.Logger
}

// NewScheduleService creates a schedule service.
func NewScheduleService(fetcher Fetcher, store Store, recentWindow time.Duration, logger zerolog.Logger) *ScheduleService {
	if recentWindow <= 0 {
		recentWindow = selection.DefaultRecentWindow
	}
	return &ScheduleService{
		fetcher:      fetcher,
		store:        store,
		recentWindow: recentWindow,
		now:          time.Now,
		logger:       logger.With().Str("component", "schedule_service").Logger(),
	}
}

// GetGames returns the ordered display pool for the followed teams.
// The cache is refreshed when forced or stale; a failed refresh falls
// back to cached data and only surfaces an error when the cache is
// empty too. The returned list applies game-day persistence, league
// fallback, and the display sort.
func (s *ScheduleService) GetGames(ctx context.Context, teams []models.Team, forceRefresh bool) ([]models.Game, error) {
	if len(teams) == 0 {
		return nil, ErrNoTeamsSelected
	}

	subjects := subjectSet(teams)

	var pool []models.Game
	if forceRefresh || s.store.IsStale(ctx) {
		games, err := s.fetcher.FetchGamesForTeams(ctx, teams)
		if err != nil {
			s.logger.Warn().Err(err).Bool("forced", forceRefresh).Msg("refresh failed, serving cached data")
			pool = filterBySubject(s.store.Load(ctx), subjects)
			if len(pool) == 0 {
				return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
			}
		} else {
			s.store.Save(ctx, games)
			pool = filterBySubject(games, subjects)
		}
	} else {
		pool = filterBySubject(s.store.Load(ctx), subjects)
		if len(pool) == 0 {
			// Cache holds nothing for these teams yet; try one
			// catch-up fetch before giving up.
			games, err := s.fetcher.FetchGamesForTeams(ctx, teams)
			if err != nil {
				s.logger.Warn().Err(err).Msg("catch-up fetch failed")
				return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
			}
			s.store.Save(ctx, games)
			pool = filterBySubject(games, subjects)
		}
	}

	return s.applyDisplayLogic(ctx, pool, teams), nil
}

// Schedule wraps GetGames into the display payload, mapping failures to
// the closed set of caller-visible error codes. A positive limit
// reduces the pool to one best game per team before truncating to the
// display capacity; limit zero returns the full ordered pool.
func (s *ScheduleService) Schedule(ctx context.Context, teams []models.Team, forceRefresh bool, limit int) models.Schedule {
	now := s.now()

	games, err := s.GetGames(ctx, teams, forceRefresh)

	lastUpdated := s.store.LastFetch(ctx)
	if lastUpdated.IsZero() {
		lastUpdated = now
	}

	switch {
	case errors.Is(err, ErrNoTeamsSelected):
		return models.Schedule{Games: []models.Game{}, LastUpdated: lastUpdated, Error: models.ErrCodeNoTeamsSelected}
	case err != nil:
		return models.Schedule{Games: []models.Game{}, LastUpdated: lastUpdated, Error: models.ErrCodeNetworkError}
	case len(games) == 0:
		return models.Schedule{Games: []models.Game{}, LastUpdated: lastUpdated, Error: models.ErrCodeNoGames}
	}

	if limit > 0 {
		games = selection.BestPerTeam(games, now, s.recentWindow)
		games = selection.Truncate(games, limit)
	}

	return models.Schedule{Games: games, LastUpdated: lastUpdated}
}

// ClearCache wipes every cache tier.
func (s *ScheduleService) ClearCache(ctx context.Context) {
	s.store.Clear(ctx)
	s.logger.Info().Msg("cache cleared")
}

// applyDisplayLogic keeps all of today's games regardless of status,
// appends leaguewide games for followed teams whose league is idle
// today, merges future games back in, and sorts for display.
func (s *ScheduleService) applyDisplayLogic(ctx context.Context, pool []models.Game, teams []models.Team) []models.Game {
	now := s.now()
	today := startOfDayUTC(now)
	tomorrow := today.AddDate(0, 0, 1)

	var todayGames, futureGames []models.Game
	for _, g := range pool {
		switch {
		case !g.StartTime.Before(today) && g.StartTime.Before(tomorrow):
			todayGames = append(todayGames, g)
		case !g.StartTime.Before(tomorrow):
			futureGames = append(futureGames, g)
		}
	}

	leaguesWithGamesToday := make(map[string]struct{}, len(todayGames))
	for _, g := range todayGames {
		leaguesWithGamesToday[strings.ToLower(g.League)] = struct{}{}
	}

	combined := append([]models.Game{}, todayGames...)
	combined = append(combined, s.leagueFallback(ctx, teams, leaguesWithGamesToday)...)
	combined = append(combined, futureGames...)

	return selection.SortForDisplay(combined, now)
}

// leagueFallback fetches today's leaguewide games for each distinct
// (sport, league) among followed teams that have no game today. The
// fallback is best-effort: failures are logged and skipped.
func (s *ScheduleService) leagueFallback(ctx context.Context, teams []models.Team, leaguesWithGamesToday map[string]struct{}) []models.Game {
	type leagueKey struct{ sport, league string }
	seen := make(map[leagueKey]struct{})
	var result []models.Game

	for _, team := range teams {
		if _, ok := leaguesWithGamesToday[strings.ToLower(team.League)]; ok {
			continue
		}
		key := leagueKey{sport: team.Sport, league: team.League}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		games, err := s.fetcher.FetchLeagueGames(ctx, team.Sport, team.League)
		if err != nil {
			s.logger.Debug().
				Err(err).
				Str("league", team.League).
				Msg("league fallback fetch failed, skipping")
			continue
		}
		result = append(result, games...)
	}
	return result
}

func subjectSet(teams []models.Team) map[string]struct{} {
	set := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		set[strings.ToLower(t.Abbreviation)] = struct{}{}
	}
	return set
}

func filterBySubject(games []models.Game, subjects map[string]struct{}) []models.Game {
	var filtered []models.Game
	for _, g := range games {
		if _, ok := subjects[strings.ToLower(g.SubjectAbbreviation)]; ok {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

func startOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
