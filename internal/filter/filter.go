// Package filter classifies diary entries as actionable: flexible-schedule
// days in the past that have not been clocked and are neither holidays nor
// weekends.
package filter

import (
	"time"

	"github.com/rubenboadana/WoffuAutomatizer/internal/model"
	"github.com/rubenboadana/WoffuAutomatizer/internal/timecalc"
)

// Actionable returns the entries that need a fill-in request, preserving
// input order. today is passed explicitly so the function stays pure.
//
// An entry qualifies when its date is strictly before today and its
// classification fields read "flexible schedule, not yet clocked": check-in
// equals the flexible sentinel, check-out is empty, and the day is neither a
// holiday nor a weekend. Entries with a missing or unparsable date, or with
// any classification field absent, are dropped without error.
func Actionable(entries []model.DiaryEntry, today time.Time) []model.DiaryEntry {
	today = timecalc.DateOnly(today)

	var actionable []model.DiaryEntry
	for _, e := range entries {
		date, err := timecalc.ParseDate(e.Date)
		if err != nil || !date.Before(today) {
			continue
		}
		if !e.HasClassification() {
			continue
		}
		if *e.In == model.FlexibleScheduleSentinel && *e.Out == "" && !*e.IsHoliday && !*e.IsWeekend {
			actionable = append(actionable, e)
		}
	}
	return actionable
}
