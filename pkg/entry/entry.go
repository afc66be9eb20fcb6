// Package entry defines the journal entry and the helpers that format it.
package entry

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry is one day's journal text. Timestamp is the identity of the entry.
type Entry struct {
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	Text      string `json:"text"`
}

// New builds an entry for now. The text is trimmed; callers reject empty text.
func New(text string, now time.Time, loc *time.Location) Entry {
	return Entry{
		Date:      Day(now, loc),
		Timestamp: now.UnixMilli(),
		Text:      strings.TrimSpace(text),
	}
}

// Time returns the creation time of the entry in loc.
func (e Entry) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(e.Timestamp).In(loc)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %d %s", e.Date, e.Timestamp, e.Text)
}

// SortByTimestampDesc returns a copy of entries, most recent first. Equal
// timestamps keep their input order.
func SortByTimestampDesc(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})
	return sorted
}

// Clone returns a copy of entries that shares no backing array.
func Clone(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// HasDay reports whether any entry is dated day.
func HasDay(entries []Entry, day string) bool {
	for _, e := range entries {
		if e.Date == day {
			return true
		}
	}
	return false
}

// IndexOf returns the position of the entry with the given timestamp, or -1.
func IndexOf(entries []Entry, timestamp int64) int {
	for i, e := range entries {
		if e.Timestamp == timestamp {
			return i
		}
	}
	return -1
}
