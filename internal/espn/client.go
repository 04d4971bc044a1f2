package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jadavison91/gametime/internal/metrics"
	"github.com/jadavison91/gametime/internal/models"
)

const (
	defaultBaseURL    = "https://site.api.espn.com/apis/site/v2/sports"
	defaultWindowDays = 7
	dateLayout        = "20060102"
)

// Config holds scoreboard client configuration.
type Config struct {
	BaseURL        string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	WindowDays     int
	MaxConcurrent  int
	HTTPClient     *http.Client // optional override, used as-is when set
}

// Client fetches games from the ESPN scoreboard API and maps them to
// domain models. Per-date failures inside a multi-date fetch are logged
// and swallowed so partial results still come back.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	windowDays    int
	maxConcurrent int
	now           func() time.Time
	logger        zerolog.Logger
	metrics       *metrics.Recorder
}

// NewClient creates a scoreboard client.
func NewClient(cfg Config, logger zerolog.Logger, recorder *metrics.Recorder) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	windowDays := cfg.WindowDays
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		connectTimeout := cfg.ConnectTimeout
		if connectTimeout <= 0 {
			connectTimeout = 10 * time.Second
		}
		requestTimeout := cfg.RequestTimeout
		if requestTimeout <= 0 {
			requestTimeout = 30 * time.Second
		}
		httpClient = &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		}
	}

	return &Client{
		baseURL:       baseURL,
		httpClient:    httpClient,
		windowDays:    windowDays,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
		logger:        logger.With().Str("component", "espn_client").Logger(),
		metrics:       recorder,
	}
}

// FetchGamesForTeam retrieves games involving one followed team over
// the fetch window (today plus the following days), sorted by start
// time. A failing date is skipped; the other dates still contribute.
func (c *Client) FetchGamesForTeam(ctx context.Context, team models.Team) ([]models.Game, error) {
	return c.FetchGamesForTeams(ctx, []models.Team{team})
}

// FetchGamesForTeams retrieves games for all followed teams. Teams are
// grouped by (sport, league) so each league/date combination is queried
// once no matter how many followed teams share the league. An event is
// re-derived once per matching followed team, each copy tagged with
// that team's perspective. Results are deduplicated per perspective,
// first occurrence kept, and sorted by start time.
func (c *Client) FetchGamesForTeams(ctx context.Context, teams []models.Team) ([]models.Game, error) {
	if len(teams) == 0 {
		return nil, nil
	}

	now := c.now().UTC()
	startOfToday := startOfDay(now)
	dates := c.windowDates(now)
	groups := groupByLeague(teams)

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		all       []models.Game
		succeeded int
		lastErr   error
	)
	sem := make(chan struct{}, c.maxConcurrent)

	for _, group := range groups {
		for _, date := range dates {
			wg.Add(1)
			go func(group leagueGroup, date string) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				sb, err := c.fetchScoreboard(ctx, group.sport, group.league, date)
				if err != nil {
					c.logger.Warn().
						Err(err).
						Str("league", group.league).
						Str("date", date).
						Msg("scoreboard fetch failed, continuing with other dates")
					mu.Lock()
					lastErr = err
					mu.Unlock()
					return
				}

				var parsed []models.Game
				for _, team := range group.teams {
					parsed = append(parsed, parseTeamGames(sb, team, startOfToday)...)
				}

				mu.Lock()
				all = append(all, parsed...)
				succeeded++
				mu.Unlock()
			}(group, date)
		}
	}
	wg.Wait()

	if succeeded == 0 && lastErr != nil {
		return nil, fmt.Errorf("all scoreboard queries failed: %w", lastErr)
	}

	games := dedupGames(all)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].StartTime.Before(games[j].StartTime)
	})
	return games, nil
}

// FetchLeagueGames retrieves every game in a league for today,
// regardless of followed-team membership. Used as the fallback when a
// followed team has no game today. Unlike the multi-date fetches, a
// failure here propagates to the caller.
func (c *Client) FetchLeagueGames(ctx context.Context, sport, league string) ([]models.Game, error) {
	today := c.now().UTC().Format(dateLayout)
	sb, err := c.fetchScoreboard(ctx, sport, league, today)
	if err != nil {
		return nil, err
	}

	games := parseLeagueGames(sb, league)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].StartTime.Before(games[j].StartTime)
	})
	return games, nil
}

func (c *Client) fetchScoreboard(ctx context.Context, sport, league, date string) (scoreboardResponse, error) {
	start := time.Now()
	sb, err := c.doFetch(ctx, sport, league, date)
	c.metrics.RecordFetch(league, time.Since(start), err)
	return sb, err
}

func (c *Client) doFetch(ctx context.Context, sport, league, date string) (scoreboardResponse, error) {
	url := fmt.Sprintf("%s/%s/%s/scoreboard?dates=%s", c.baseURL, sport, league, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return scoreboardResponse{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return scoreboardResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return scoreboardResponse{}, fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var sb scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&sb); err != nil {
		return scoreboardResponse{}, fmt.Errorf("espn: decode scoreboard: %w", err)
	}
	return sb, nil
}

// windowDates returns the fetch window (today + following days) in
// yyyyMMdd form, computed once per call.
func (c *Client) windowDates(now time.Time) []string {
	dates := make([]string, 0, c.windowDays)
	for i := 0; i < c.windowDays; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

type leagueGroup struct {
	sport  string
	league string
	teams  []models.Team
}

func groupByLeague(teams []models.Team) []leagueGroup {
	index := make(map[string]int)
	var groups []leagueGroup
	for _, t := range teams {
		key := t.Sport + "/" + t.League
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, leagueGroup{sport: t.Sport, league: t.League})
		}
		groups[i].teams = append(groups[i].teams, t)
	}
	return groups
}

// dedupGames collapses repeated (event, perspective) pairs keeping the
// first occurrence. Two perspectives on the same event are distinct
// records and both survive.
func dedupGames(games []models.Game) []models.Game {
	seen := make(map[string]struct{}, len(games))
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		key := g.ID + "|" + strings.ToLower(g.SubjectAbbreviation)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, g)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
