package timecalc

import "time"

// DateLayout is the calendar date format used by the Woffu API.
const DateLayout = "2006-01-02"

// MonthRange returns the first and last day of the given month as a closed
// interval [first, last], both at midnight UTC.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// DaysIn returns the number of calendar days in the given month.
func DaysIn(year int, month time.Month) int {
	_, last := MonthRange(year, month)
	return last.Day()
}

// ParseDate parses a YYYY-MM-DD date string at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly maps t to midnight UTC of its calendar date, so that dates parsed
// with ParseDate compare by calendar day regardless of t's zone.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
