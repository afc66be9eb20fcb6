package demo

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/store"
)

func init() {
	color.NoColor = true
}

var fixedNow = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func TestDemoFillsPastDaysWithGaps(t *testing.T) {
	mem := store.NewMemory()
	var out bytes.Buffer
	d := Demo{
		Persistence: mem,
		Location:    time.UTC,
		Clock:       func() time.Time { return fixedNow },
		Days:        10,
		Skip:        5,
		Out:         &out,
	}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	entries := mem.Load(context.Background())
	if len(entries) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(entries))
	}
	if entry.HasDay(entries, "2026-10-19") {
		t.Fatalf("expected today to stay free")
	}
	if entry.HasDay(entries, "2026-10-14") || entry.HasDay(entries, "2026-10-09") {
		t.Fatalf("expected skipped days to stay empty")
	}
	if !strings.Contains(out.String(), "added 8 sample entries, 8 total, streak 4") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestDemoKeepsExistingDays(t *testing.T) {
	mine := entry.Entry{Date: "2026-10-18", Timestamp: fixedNow.AddDate(0, 0, -1).UnixMilli(), Text: "mine"}
	mem := store.NewMemory(mine)
	d := Demo{
		Persistence: mem,
		Location:    time.UTC,
		Clock:       func() time.Time { return fixedNow },
		Days:        3,
		Out:         &bytes.Buffer{},
	}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	entries := mem.Load(context.Background())
	if len(entries) != 3 {
		t.Fatalf("expected two added next to the existing entry, got %#v", entries)
	}
	if i := entry.IndexOf(entries, mine.Timestamp); i < 0 || entries[i].Text != "mine" {
		t.Fatalf("expected the existing entry untouched")
	}
}

func TestDemoRequiresPersistence(t *testing.T) {
	if err := (&Demo{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
}
