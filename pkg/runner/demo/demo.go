package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/store"
	"tableflip.dev/beyond/pkg/streak"
)

var lines = []string{
	"Walked to the lake before work. Cold, clear, quiet.",
	"Long day. Read two chapters on the train home.",
	"Tried the new bakery on the corner, the rye is excellent.",
	"Called my sister. We should do that more often.",
	"Rain all afternoon, finished the puzzle.",
	"Fixed the bike chain myself for the first time.",
	"Nothing much happened, and that was fine.",
}

// Demo fills the journal with sample entries for the days before today.
// Days that already have an entry are left alone.
type Demo struct {
	Persistence store.Persistence
	Location    *time.Location
	Clock       func() time.Time
	// Days is how far back to go.
	Days int
	// Skip leaves every Skip-th day empty; zero fills every day.
	Skip int
	Out  io.Writer
}

func (d *Demo) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}
	loc := d.Location
	if loc == nil {
		loc = time.Local
	}
	now := time.Now()
	if d.Clock != nil {
		now = d.Clock()
	}
	now = now.In(loc)

	entries := d.Persistence.Load(ctx)
	added := 0
	for i := d.Days; i >= 1; i-- {
		if d.Skip > 0 && i%d.Skip == 0 {
			continue
		}
		at := time.Date(now.Year(), now.Month(), now.Day()-i, 21, 0, 0, 0, loc)
		e := entry.New(lines[i%len(lines)], at, loc)
		if entry.HasDay(entries, e.Date) {
			continue
		}
		entries = append(entries, e)
		added++
	}
	if added > 0 {
		if err := d.Persistence.Save(ctx, entries); err != nil {
			return err
		}
	}

	out := d.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.FgGreen).Fprintf(out, "added %d sample entries", added)
	_, _ = color.New(color.Faint).Fprintf(out, ", %d total, streak %d\n",
		len(entries), streak.Calculate(entries, entry.Day(now, loc)))
	return nil
}
