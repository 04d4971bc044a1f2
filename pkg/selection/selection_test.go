package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadavison91/gametime/internal/models"
)

var now = time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

func game(id, subject string, status models.GameStatus, start time.Time) models.Game {
	return models.Game{
		ID:                  id,
		StartTime:           start,
		Status:              status,
		League:              "nba",
		SubjectAbbreviation: subject,
	}
}

// TestSortForDisplay_TodayBeforeFuture tests the day partition
func TestSortForDisplay_TodayBeforeFuture(t *testing.T) {
	games := []models.Game{
		game("future", "LAL", models.StatusScheduled, now.Add(48*time.Hour)),
		game("today", "BOS", models.StatusScheduled, now.Add(7*time.Hour)),
	}

	sorted := SortForDisplay(games, now)
	require.Len(t, sorted, 2)
	assert.Equal(t, "today", sorted[0].ID)
	assert.Equal(t, "future", sorted[1].ID)
}

// TestSortForDisplay_TodayByStatusPriority tests that live games lead
// today's block even when they started later
func TestSortForDisplay_TodayByStatusPriority(t *testing.T) {
	games := []models.Game{
		game("done", "BOS", models.StatusCompleted, now.Add(-10*time.Hour)),
		game("upcoming", "NYK", models.StatusScheduled, now.Add(7*time.Hour)),
		game("live", "LAL", models.StatusInProgress, now.Add(-time.Hour)),
		game("off", "MIA", models.StatusPostponed, now.Add(6*time.Hour)),
	}

	sorted := SortForDisplay(games, now)
	require.Len(t, sorted, 4)
	assert.Equal(t, "live", sorted[0].ID)
	assert.Equal(t, "upcoming", sorted[1].ID)
	assert.Equal(t, "done", sorted[2].ID)
	assert.Equal(t, "off", sorted[3].ID)
}

// TestSortForDisplay_FutureByStartTimeOnly tests that status never
// reorders future days
func TestSortForDisplay_FutureByStartTimeOnly(t *testing.T) {
	games := []models.Game{
		game("later", "LAL", models.StatusInProgress, now.Add(72*time.Hour)),
		game("sooner", "BOS", models.StatusPostponed, now.Add(24*time.Hour)),
	}

	sorted := SortForDisplay(games, now)
	assert.Equal(t, "sooner", sorted[0].ID)
	assert.Equal(t, "later", sorted[1].ID)
}

// TestBestPerTeam_InProgressWins tests selection rule precedence for a
// live game
func TestBestPerTeam_InProgressWins(t *testing.T) {
	games := []models.Game{
		game("done", "LAL", models.StatusCompleted, now.Add(-2*time.Hour)),
		game("live", "LAL", models.StatusInProgress, now.Add(-time.Hour)),
		game("next", "LAL", models.StatusScheduled, now.Add(24*time.Hour)),
	}

	selected := BestPerTeam(games, now, DefaultRecentWindow)
	require.Len(t, selected, 1)
	assert.Equal(t, "live", selected[0].ID)
}

// TestBestPerTeam_RecentCompletedBeatsScheduled tests that a game that
// just ended keeps the slot over the next scheduled one
func TestBestPerTeam_RecentCompletedBeatsScheduled(t *testing.T) {
	games := []models.Game{
		game("done", "LAL", models.StatusCompleted, now.Add(-2*time.Hour)),
		game("next", "LAL", models.StatusScheduled, now.Add(5*time.Hour)),
	}

	selected := BestPerTeam(games, now, DefaultRecentWindow)
	require.Len(t, selected, 1)
	assert.Equal(t, "done", selected[0].ID)
}

// TestBestPerTeam_StaleCompletedLosesToScheduled tests the recency window
func TestBestPerTeam_StaleCompletedLosesToScheduled(t *testing.T) {
	games := []models.Game{
		game("old", "LAL", models.StatusCompleted, now.Add(-13*time.Hour)),
		game("next", "LAL", models.StatusScheduled, now.Add(5*time.Hour)),
	}

	selected := BestPerTeam(games, now, DefaultRecentWindow)
	require.Len(t, selected, 1)
	assert.Equal(t, "next", selected[0].ID)
}

// TestBestPerTeam_EarliestScheduled tests that a far-out scheduled game
// still gets picked when nothing else qualifies
func TestBestPerTeam_EarliestScheduled(t *testing.T) {
	games := []models.Game{
		game("later", "LAL", models.StatusScheduled, now.Add(54*time.Hour)),
		game("sooner", "LAL", models.StatusScheduled, now.Add(30*time.Hour)),
	}

	selected := BestPerTeam(games, now, DefaultRecentWindow)
	require.Len(t, selected, 1)
	assert.Equal(t, "sooner", selected[0].ID)
}

// TestBestPerTeam_PostponedLastResort tests that a postponed game fills
// the slot when no scheduled game exists
func TestBestPerTeam_PostponedLastResort(t *testing.T) {
	games := []models.Game{
		game("off", "LAL", models.StatusPostponed, now.Add(6*time.Hour)),
	}

	selected := BestPerTeam(games, now, DefaultRecentWindow)
	require.Len(t, selected, 1)
	assert.Equal(t, "off", selected[0].ID)
}

// TestBestPerTeam_TeamWithNothingContributesNothing tests that stale
// completed games outside every rule drop the team entirely
func TestBestPerTeam_TeamWithNothingContributesNothing(t *testing.T) {
	games := []models.Game{
		game("old", "LAL", models.StatusCompleted, now.Add(-20*time.Hour)),
		game("live", "BOS", models.StatusInProgress, now.Add(-time.Hour)),
	}

	selected := BestPerTeam(games, now, DefaultRecentWindow)
	require.Len(t, selected, 1)
	assert.Equal(t, "live", selected[0].ID)
}

// TestBestPerTeam_OnePerTeamAcrossTeams tests the per-team reduction and
// final ordering
func TestBestPerTeam_OnePerTeamAcrossTeams(t *testing.T) {
	games := []models.Game{
		game("lal-next", "LAL", models.StatusScheduled, now.Add(7*time.Hour)),
		game("lal-later", "LAL", models.StatusScheduled, now.Add(31*time.Hour)),
		game("bos-live", "BOS", models.StatusInProgress, now.Add(-time.Hour)),
		game("nyk-next", "NYK", models.StatusScheduled, now.Add(3*time.Hour)),
	}

	selected := BestPerTeam(games, now, DefaultRecentWindow)
	require.Len(t, selected, 3)

	// Live first, then scheduled by start time
	assert.Equal(t, "bos-live", selected[0].ID)
	assert.Equal(t, "nyk-next", selected[1].ID)
	assert.Equal(t, "lal-next", selected[2].ID)
}

// TestBestPerTeam_LeaguewideRecordsSurvive tests that fallback records
// with no subject team group separately
func TestBestPerTeam_LeaguewideRecordsSurvive(t *testing.T) {
	games := []models.Game{
		game("lal-next", "LAL", models.StatusScheduled, now.Add(7*time.Hour)),
		game("league", "", models.StatusScheduled, now.Add(3*time.Hour)),
	}

	selected := BestPerTeam(games, now, DefaultRecentWindow)
	require.Len(t, selected, 2)
	assert.Equal(t, "league", selected[0].ID)
	assert.Equal(t, "lal-next", selected[1].ID)
}

// TestBestPerTeam_Deterministic tests that repeated runs agree
func TestBestPerTeam_Deterministic(t *testing.T) {
	games := []models.Game{
		game("a", "LAL", models.StatusScheduled, now.Add(7*time.Hour)),
		game("b", "BOS", models.StatusScheduled, now.Add(7*time.Hour)),
		game("c", "NYK", models.StatusScheduled, now.Add(7*time.Hour)),
	}

	first := BestPerTeam(games, now, DefaultRecentWindow)
	for i := 0; i < 10; i++ {
		again := BestPerTeam(games, now, DefaultRecentWindow)
		require.Equal(t, first, again)
	}
}

// TestTruncate tests display capacity bounds
func TestTruncate(t *testing.T) {
	games := []models.Game{
		game("a", "LAL", models.StatusScheduled, now),
		game("b", "BOS", models.StatusScheduled, now),
		game("c", "NYK", models.StatusScheduled, now),
	}

	assert.Len(t, Truncate(games, 2), 2)
	assert.Len(t, Truncate(games, 3), 3)
	assert.Len(t, Truncate(games, 10), 3)
	assert.Nil(t, Truncate(games, 0))
}
