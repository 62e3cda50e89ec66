package progress_test

import (
	"testing"
	"time"

	"github.com/2beens/fitgenius/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return parsed
}

func TestHistory_Upsert(t *testing.T) {
	var history progress.History

	history = history.Upsert(progress.Snapshot{Date: "2026-09-01", Calories: 500, Water: 250})
	history = history.Upsert(progress.Snapshot{Date: "2026-09-02", Calories: 600})
	require.Len(t, history, 2)

	// same date overwrites in place, never appends a duplicate
	history = history.Upsert(progress.Snapshot{Date: "2026-09-01", Calories: 1200, Water: 750})
	require.Len(t, history, 2)
	assert.Equal(t, 1200, history[0].Calories)
	assert.Equal(t, 750, history[0].Water)
	assert.Equal(t, "2026-09-02", history[1].Date)
}

func TestHistory_Streak(t *testing.T) {
	today := day(t, "2026-09-01")

	t.Run("empty history", func(t *testing.T) {
		assert.Equal(t, 0, progress.History{}.Streak(today))
	})

	t.Run("single entry today", func(t *testing.T) {
		history := progress.History{{Date: "2026-09-01"}}
		assert.Equal(t, 1, history.Streak(today))
	})

	t.Run("single entry yesterday", func(t *testing.T) {
		history := progress.History{{Date: "2026-08-31"}}
		assert.Equal(t, 1, history.Streak(today))
	})

	t.Run("yesterday entry in a negative offset zone", func(t *testing.T) {
		// local evening of Sep 1st, still Sep 2nd on the UTC 24h grid
		evening := time.Date(2026, 9, 1, 20, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))
		history := progress.History{{Date: "2026-08-31"}}
		assert.Equal(t, 1, history.Streak(evening))
	})

	t.Run("most recent entry too old", func(t *testing.T) {
		history := progress.History{
			{Date: "2026-08-29"},
			{Date: "2026-08-30"},
		}
		assert.Equal(t, 0, history.Streak(today))
	})

	t.Run("consecutive run", func(t *testing.T) {
		history := progress.History{
			{Date: "2026-08-29"},
			{Date: "2026-08-30"},
			{Date: "2026-08-31"},
			{Date: "2026-09-01"},
		}
		assert.Equal(t, 4, history.Streak(today))
	})

	t.Run("run broken by a gap", func(t *testing.T) {
		history := progress.History{
			{Date: "2026-08-26"},
			{Date: "2026-08-27"},
			{Date: "2026-08-31"},
			{Date: "2026-09-01"},
		}
		assert.Equal(t, 2, history.Streak(today))
	})

	t.Run("insertion order does not matter", func(t *testing.T) {
		history := progress.History{
			{Date: "2026-09-01"},
			{Date: "2026-08-30"},
			{Date: "2026-08-31"},
		}
		assert.Equal(t, 3, history.Streak(today))
	})

	t.Run("year boundary", func(t *testing.T) {
		newYear := day(t, "2026-01-01")
		history := progress.History{
			{Date: "2025-12-30"},
			{Date: "2025-12-31"},
			{Date: "2026-01-01"},
		}
		assert.Equal(t, 3, history.Streak(newYear))
	})

	t.Run("malformed dates skipped", func(t *testing.T) {
		history := progress.History{
			{Date: "garbage"},
			{Date: "2026-09-01"},
		}
		assert.Equal(t, 1, history.Streak(today))
	})
}
