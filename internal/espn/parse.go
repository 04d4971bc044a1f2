package espn

import (
	"strconv"
	"strings"
	"time"

	"github.com/jadavison91/gametime/internal/models"
)

// startTimeLayouts are tried in order. ESPN usually returns RFC3339
// with or without fractional seconds, but scoreboard dates sometimes
// omit the seconds entirely (e.g., "2026-01-31T00:00Z").
var startTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z07:00",
}

// parseStartTime tries each known layout; ok is false when none match.
func parseStartTime(raw string) (time.Time, bool) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseStatus derives the game status with a priority cascade: the
// explicit completed flag, then the pre/in/post state field, then
// keyword matching on the free-text name and short detail. Anything
// unmatched is treated as scheduled.
func parseStatus(st *statusType) models.GameStatus {
	if st == nil {
		return models.StatusScheduled
	}

	if st.Completed {
		return models.StatusCompleted
	}

	switch strings.ToLower(st.State) {
	case "post":
		return models.StatusCompleted
	case "in":
		return models.StatusInProgress
	case "pre":
		return models.StatusScheduled
	}

	for _, text := range []string{strings.ToLower(st.Name), strings.ToLower(st.ShortDetail)} {
		if text == "" {
			continue
		}
		switch {
		// "postponed" contains "post", so these two come first
		case strings.Contains(text, "postpone"):
			return models.StatusPostponed
		case strings.Contains(text, "cancel") || strings.Contains(text, "abandon"):
			return models.StatusCanceled
		case strings.Contains(text, "final") || strings.Contains(text, "post") ||
			text == "ft" || strings.Contains(text, "full time") || strings.Contains(text, "fulltime") ||
			text == "aet" || strings.Contains(text, "after extra") ||
			strings.Contains(text, "ended") || strings.Contains(text, "complete"):
			return models.StatusCompleted
		case strings.Contains(text, "progress") || text == "in" ||
			strings.Contains(text, "half") || text == "ht" ||
			text == "1h" || text == "2h" || strings.Contains(text, "live"):
			return models.StatusInProgress
		}
	}

	return models.StatusScheduled
}

// parseScore converts the competitor score string to an optional int.
// Absent or non-numeric values yield nil (game has not started).
func parseScore(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// parseInningHalf extracts "top"/"bottom" from the status short detail.
// Only meaningful for baseball, where ESPN reports "Top 5th" / "Bot 7th".
func parseInningHalf(shortDetail, league string) string {
	if !strings.EqualFold(league, "mlb") {
		return ""
	}
	detail := strings.ToLower(shortDetail)
	switch {
	case strings.Contains(detail, "top"):
		return "top"
	case strings.Contains(detail, "bot"):
		return "bottom"
	}
	return ""
}

// buildGame assembles a Game from one event for a given subject team
// abbreviation (empty for leaguewide records). ok is false when the
// event is structurally unusable (missing sides or unparsable date).
func buildGame(ev event, league, subjectAbbr string) (models.Game, bool) {
	if len(ev.Competitions) == 0 {
		return models.Game{}, false
	}
	comp := ev.Competitions[0]

	var home, away *competitor
	for i := range comp.Competitors {
		switch comp.Competitors[i].HomeAway {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return models.Game{}, false
	}

	startTime, ok := parseStartTime(ev.Date)
	if !ok {
		return models.Game{}, false
	}

	status := parseStatus(statusTypeOf(ev.Status))

	g := models.Game{
		ID:                  ev.ID,
		HomeTeam:            home.Team.DisplayName,
		HomeAbbreviation:    home.Team.Abbreviation,
		HomeLogoURL:         home.Team.Logo,
		AwayTeam:            away.Team.DisplayName,
		AwayAbbreviation:    away.Team.Abbreviation,
		AwayLogoURL:         away.Team.Logo,
		StartTime:           startTime,
		IsHomeGame:          subjectAbbr != "" && strings.EqualFold(home.Team.Abbreviation, subjectAbbr),
		Status:              status,
		League:              league,
		SubjectAbbreviation: subjectAbbr,
		HomeScore:           parseScore(home.Score),
		AwayScore:           parseScore(away.Score),
	}
	if comp.Venue != nil {
		g.Venue = comp.Venue.FullName
	}
	if ev.Status != nil {
		g.Clock = ev.Status.DisplayClock
		if status == models.StatusInProgress {
			period := ev.Status.Period
			g.PeriodNumber = &period
		}
		if ev.Status.Type != nil {
			g.PeriodHalf = parseInningHalf(ev.Status.Type.ShortDetail, league)
		}
	}
	return g, true
}

func statusTypeOf(st *eventStatus) *statusType {
	if st == nil {
		return nil
	}
	return st.Type
}

// parseTeamGames extracts the games in a scoreboard that involve the
// given followed team, tagged with that team's perspective. Games that
// started before startOfToday are dropped so completed games from prior
// days never reappear.
func parseTeamGames(sb scoreboardResponse, team models.Team, startOfToday time.Time) []models.Game {
	var games []models.Game
	for _, ev := range sb.Events {
		if len(ev.Competitions) == 0 {
			continue
		}
		involved := false
		for _, c := range ev.Competitions[0].Competitors {
			if strings.EqualFold(c.Team.Abbreviation, team.Abbreviation) {
				involved = true
				break
			}
		}
		if !involved {
			continue
		}
		g, ok := buildGame(ev, team.League, team.Abbreviation)
		if !ok {
			continue
		}
		if g.StartTime.Before(startOfToday) {
			continue
		}
		games = append(games, g)
	}
	return games
}

// parseLeagueGames extracts every game in a scoreboard with no subject
// team attached.
func parseLeagueGames(sb scoreboardResponse, league string) []models.Game {
	var games []models.Game
	for _, ev := range sb.Events {
		g, ok := buildGame(ev, league, "")
		if !ok {
			continue
		}
		games = append(games, g)
	}
	return games
}
