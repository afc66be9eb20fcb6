package streak

import (
	"testing"

	"tableflip.dev/beyond/pkg/entry"
)

const today = "2026-10-19"

func on(days ...string) []entry.Entry {
	out := make([]entry.Entry, 0, len(days))
	for i, d := range days {
		out = append(out, entry.Entry{Date: d, Timestamp: int64(i + 1), Text: "x"})
	}
	return out
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name    string
		entries []entry.Entry
		want    int
	}{
		{name: "empty", entries: nil, want: 0},
		{name: "today only", entries: on(today), want: 1},
		{name: "three in a row", entries: on(today, "2026-10-18", "2026-10-17"), want: 3},
		{name: "no entry today", entries: on("2026-10-18", "2026-10-17"), want: 2},
		{name: "gap at yesterday", entries: on("2026-10-17"), want: 0},
		{name: "today after gap", entries: on(today, "2026-10-17"), want: 1},
		{name: "duplicate dates count once", entries: on(today, today, "2026-10-18", "2026-10-18"), want: 2},
		{name: "future entries ignored", entries: on("2026-10-20", "2026-10-18"), want: 1},
		{name: "across month boundary", entries: on("2026-10-01", "2026-09-30", "2026-09-29"), want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Calculate(tc.entries, today); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestCalculateAcrossMonth(t *testing.T) {
	got := Calculate(on("2026-10-01", "2026-09-30", "2026-09-29"), "2026-10-02")
	if got != 3 {
		t.Fatalf("expected 3 across month boundary, got %d", got)
	}
}

func TestCalculateMalformedToday(t *testing.T) {
	if got := Calculate(on(today), "not-a-day"); got != 0 {
		t.Fatalf("expected 0 for malformed today, got %d", got)
	}
}

func TestLongest(t *testing.T) {
	entries := on("2026-01-01", "2026-01-02", "2026-01-03", "2026-02-10", "2026-02-11", "2026-01-02")
	if got := Longest(entries); got != 3 {
		t.Fatalf("expected longest 3, got %d", got)
	}
	if got := Longest(nil); got != 0 {
		t.Fatalf("expected 0 for empty, got %d", got)
	}
}
