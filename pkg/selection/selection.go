// Package selection reduces a pool of games to the subset worth
// showing on a space-constrained display. Every function is a pure
// function of its inputs and "now", so repeated invocations with the
// same pool produce identical output.
package selection

import (
	"sort"
	"strings"
	"time"

	"github.com/jadavison91/gametime/internal/models"
)

// DefaultRecentWindow is how long a completed game keeps priority over
// the next scheduled one.
const DefaultRecentWindow = 12 * time.Hour

// SortForDisplay orders games for display: today's games before future
// ones, today's by status priority (in-progress, scheduled, completed,
// postponed, canceled) with start time as tie-break, future games by
// start time alone. Day boundaries are evaluated in UTC.
func SortForDisplay(games []models.Game, now time.Time) []models.Game {
	today := startOfDayUTC(now)
	tomorrow := today.AddDate(0, 0, 1)

	sorted := make([]models.Game, len(games))
	copy(sorted, games)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		aToday := isWithin(a.StartTime, today, tomorrow)
		bToday := isWithin(b.StartTime, today, tomorrow)

		if aToday != bToday {
			return aToday
		}
		if aToday && bToday {
			if pa, pb := a.Status.Priority(), b.Status.Priority(); pa != pb {
				return pa < pb
			}
		}
		return a.StartTime.Before(b.StartTime)
	})
	return sorted
}

// BestPerTeam reduces the pool to at most one game per subject team:
// an in-progress game wins, else the most recently started completed
// game within recentWindow, else the earliest scheduled game at or
// after now, else the earliest game at or after now regardless of
// status (postponed games pending reschedule). Teams with nothing
// matching contribute nothing. Leaguewide fallback records (empty
// subject) are grouped under their own key so they survive the
// reduction. The result is sorted by status priority, then start time.
func BestPerTeam(games []models.Game, now time.Time, recentWindow time.Duration) []models.Game {
	if recentWindow <= 0 {
		recentWindow = DefaultRecentWindow
	}

	grouped := make(map[string][]models.Game)
	var order []string
	for _, g := range games {
		key := strings.ToLower(g.SubjectAbbreviation)
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], g)
	}

	var selected []models.Game
	for _, key := range order {
		if best, ok := bestGame(grouped[key], now, recentWindow); ok {
			selected = append(selected, best)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if pa, pb := a.Status.Priority(), b.Status.Priority(); pa != pb {
			return pa < pb
		}
		return a.StartTime.Before(b.StartTime)
	})
	return selected
}

// Truncate bounds an already-sorted list to the display capacity.
func Truncate(games []models.Game, capacity int) []models.Game {
	if capacity <= 0 {
		return nil
	}
	if len(games) <= capacity {
		return games
	}
	return games[:capacity]
}

func bestGame(games []models.Game, now time.Time, recentWindow time.Duration) (models.Game, bool) {
	for _, g := range games {
		if g.Status == models.StatusInProgress {
			return g, true
		}
	}

	recentCutoff := now.Add(-recentWindow)
	var recent *models.Game
	for i, g := range games {
		if g.Status != models.StatusCompleted || g.StartTime.Before(recentCutoff) {
			continue
		}
		if recent == nil || g.StartTime.After(recent.StartTime) {
			recent = &games[i]
		}
	}
	if recent != nil {
		return *recent, true
	}

	var next *models.Game
	for i, g := range games {
		if g.Status != models.StatusScheduled || g.StartTime.Before(now) {
			continue
		}
		if next == nil || g.StartTime.Before(next.StartTime) {
			next = &games[i]
		}
	}
	if next != nil {
		return *next, true
	}

	var upcoming *models.Game
	for i, g := range games {
		if g.StartTime.Before(now) {
			continue
		}
		if upcoming == nil || g.StartTime.Before(upcoming.StartTime) {
			upcoming = &games[i]
		}
	}
	if upcoming != nil {
		return *upcoming, true
	}
	return models.Game{}, false
}

func isWithin(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func startOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
