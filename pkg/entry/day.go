package entry

import (
	"time"
)

// LayoutDay is the calendar-day layout stored in Entry.Date.
const LayoutDay = "2006-01-02"

// Day returns the calendar day string of t in loc.
func Day(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(LayoutDay)
}

// ParseDay parses a YYYY-MM-DD string as midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(LayoutDay, s, loc)
}

// PrevDay returns the day before s, or "" if s is not a day string.
func PrevDay(s string) string {
	t, err := time.Parse(LayoutDay, s)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(LayoutDay)
}

// NextDay returns the day after s, or "" if s is not a day string.
func NextDay(s string) string {
	t, err := time.Parse(LayoutDay, s)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(LayoutDay)
}
