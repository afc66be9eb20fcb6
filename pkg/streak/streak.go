// Package streak computes consecutive-day streaks over journal entries.
package streak

import (
	"sort"

	"tableflip.dev/beyond/pkg/entry"
)

// Calculate returns the current streak as of today (YYYY-MM-DD).
//
// Today's entry is optional for continuity: the walk back starts at
// yesterday regardless, and today only adds one when present.
func Calculate(entries []entry.Entry, today string) int {
	if len(entries) == 0 {
		return 0
	}
	days := daySet(entries)

	count := 0
	if _, ok := days[today]; ok {
		count++
	}
	for day := entry.PrevDay(today); day != ""; day = entry.PrevDay(day) {
		if _, ok := days[day]; !ok {
			break
		}
		count++
	}
	return count
}

// Longest returns the longest run of consecutive days found in entries.
func Longest(entries []entry.Entry) int {
	days := daySet(entries)
	sorted := make([]string, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	best, run := 0, 0
	prev := ""
	for _, d := range sorted {
		if prev != "" && entry.NextDay(prev) == d {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = d
	}
	return best
}

func daySet(entries []entry.Entry) map[string]struct{} {
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[e.Date] = struct{}{}
	}
	return days
}
