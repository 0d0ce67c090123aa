package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubenboadana/WoffuAutomatizer/internal/filter"
	"github.com/rubenboadana/WoffuAutomatizer/internal/model"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// flexDay builds a fully-classified flexible-schedule entry for date.
func flexDay(date string, diaryID int64) model.DiaryEntry {
	return model.DiaryEntry{
		Date:      date,
		In:        strPtr(model.FlexibleScheduleSentinel),
		Out:       strPtr(""),
		IsHoliday: boolPtr(false),
		IsWeekend: boolPtr(false),
		DiaryID:   diaryID,
	}
}

func TestActionable(t *testing.T) {
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("flexible day in the past is included", func(t *testing.T) {
		got := filter.Actionable([]model.DiaryEntry{flexDay("2024-01-05", 1)}, today)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].DiaryID)
	})

	t.Run("weekend day is excluded", func(t *testing.T) {
		e := flexDay("2024-01-05", 1)
		e.IsWeekend = boolPtr(true)
		assert.Empty(t, filter.Actionable([]model.DiaryEntry{e}, today))
	})

	t.Run("holiday is excluded", func(t *testing.T) {
		e := flexDay("2024-01-05", 1)
		e.IsHoliday = boolPtr(true)
		assert.Empty(t, filter.Actionable([]model.DiaryEntry{e}, today))
	})

	t.Run("already clocked out is excluded", func(t *testing.T) {
		e := flexDay("2024-01-05", 1)
		e.Out = strPtr("18:00")
		assert.Empty(t, filter.Actionable([]model.DiaryEntry{e}, today))
	})

	t.Run("fixed-shift check-in is excluded", func(t *testing.T) {
		e := flexDay("2024-01-05", 1)
		e.In = strPtr("09:00")
		assert.Empty(t, filter.Actionable([]model.DiaryEntry{e}, today))
	})

	t.Run("date boundaries", func(t *testing.T) {
		entries := []model.DiaryEntry{
			flexDay("2024-01-09", 9),  // today - 1: included
			flexDay("2024-01-10", 10), // today: excluded
			flexDay("2024-01-11", 11), // future: excluded
		}
		got := filter.Actionable(entries, today)
		require.Len(t, got, 1)
		assert.Equal(t, "2024-01-09", got[0].Date)
	})

	t.Run("today in a non-UTC zone still excludes today", func(t *testing.T) {
		ny := time.FixedZone("UTC-5", -5*3600)
		localToday := time.Date(2024, 1, 10, 0, 30, 0, 0, ny)
		got := filter.Actionable([]model.DiaryEntry{flexDay("2024-01-10", 1)}, localToday)
		assert.Empty(t, got)
	})

	t.Run("missing classification fields exclude the entry", func(t *testing.T) {
		for name, mutate := range map[string]func(*model.DiaryEntry){
			"no in":        func(e *model.DiaryEntry) { e.In = nil },
			"no out":       func(e *model.DiaryEntry) { e.Out = nil },
			"no isHoliday": func(e *model.DiaryEntry) { e.IsHoliday = nil },
			"no isWeekend": func(e *model.DiaryEntry) { e.IsWeekend = nil },
		} {
			t.Run(name, func(t *testing.T) {
				e := flexDay("2024-01-05", 1)
				mutate(&e)
				assert.Empty(t, filter.Actionable([]model.DiaryEntry{e}, today))
			})
		}
	})

	t.Run("unparsable or missing date is dropped", func(t *testing.T) {
		bad := flexDay("05/01/2024", 1)
		empty := flexDay("", 2)
		assert.Empty(t, filter.Actionable([]model.DiaryEntry{bad, empty}, today))
	})

	t.Run("order preserved and repeatable", func(t *testing.T) {
		entries := []model.DiaryEntry{
			flexDay("2024-01-03", 3),
			flexDay("2024-01-10", 10),
			flexDay("2024-01-02", 2),
			flexDay("2024-01-08", 8),
		}
		first := filter.Actionable(entries, today)
		second := filter.Actionable(entries, today)

		require.Len(t, first, 3)
		assert.Equal(t, []int64{3, 2, 8}, []int64{first[0].DiaryID, first[1].DiaryID, first[2].DiaryID})
		assert.Equal(t, first, second)
	})
}
