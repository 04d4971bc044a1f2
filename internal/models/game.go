package models

import (
	"time"
)

// GameStatus is the lifecycle state of a contest.
type GameStatus string

const (
	StatusScheduled  GameStatus = "scheduled"
	StatusInProgress GameStatus = "in_progress"
	StatusCompleted  GameStatus = "completed"
	StatusPostponed  GameStatus = "postponed"
	StatusCanceled   GameStatus = "canceled"
)

// Priority returns the display sort rank for a status (lower sorts first).
func (s GameStatus) Priority() int {
	switch s {
	case StatusInProgress:
		return 0
	case StatusScheduled:
		return 1
	case StatusCompleted:
		return 2
	case StatusPostponed:
		return 3
	case StatusCanceled:
		return 4
	default:
		return 5
	}
}

// Team is immutable reference data for a followable team.
// Identity is the (ID, League) pair.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Sport        string `json:"sport"`   // e.g., "basketball"
	League       string `json:"league"`  // e.g., "nba"
	LogoURL      string `json:"logo_url,omitempty"`
}

// Game is a point-in-time snapshot of one contest. Two records with the
// same ID but different score/status are successive snapshots; the newer
// one supersedes the older for that ID.
type Game struct {
	ID               string     `json:"id"`
	HomeTeam         string     `json:"home_team"`
	HomeAbbreviation string     `json:"home_abbreviation"`
	HomeLogoURL      string     `json:"home_logo_url,omitempty"`
	AwayTeam         string     `json:"away_team"`
	AwayAbbreviation string     `json:"away_abbreviation"`
	AwayLogoURL      string     `json:"away_logo_url,omitempty"`
	StartTime        time.Time  `json:"start_time"`
	IsHomeGame       bool       `json:"is_home_game"`
	Venue            string     `json:"venue,omitempty"`
	Status           GameStatus `json:"status"`
	League           string     `json:"league"`

	// SubjectAbbreviation is the followed team this record was derived
	// for. Empty for leaguewide fallback records.
	SubjectAbbreviation string `json:"subject_abbreviation"`

	// Score fields are nil until the game has started.
	HomeScore    *int   `json:"home_score,omitempty"`
	AwayScore    *int   `json:"away_score,omitempty"`
	PeriodNumber *int   `json:"period_number,omitempty"`
	PeriodHalf   string `json:"period_half,omitempty"` // baseball only: "top" or "bottom"
	Clock        string `json:"clock,omitempty"`
}

// Opponent returns the abbreviation of the subject team's opponent.
func (g Game) Opponent() string {
	if g.IsHomeGame {
		return g.AwayAbbreviation
	}
	return g.HomeAbbreviation
}

// ScheduleError is the closed set of caller-visible failure codes.
type ScheduleError string

const (
	ErrCodeNoTeamsSelected ScheduleError = "no_teams_selected"
	ErrCodeNetworkError    ScheduleError = "network_error"
	ErrCodeNoGames         ScheduleError = "no_games"
)

// Schedule is the display payload produced on every request. It is
// never persisted.
type Schedule struct {
	Games       []Game        `json:"games"`
	LastUpdated time.Time     `json:"last_updated"`
	Error       ScheduleError `json:"error,omitempty"`
}
