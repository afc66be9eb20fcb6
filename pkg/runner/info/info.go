package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/beyond/pkg/store"
)

type Info struct {
	Settings    *store.Settings
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("BEYOND_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "BEYOND_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "BEYOND_CONFIG_PATH env var not set")
	}

	if n.Settings == nil {
		var err error
		n.Settings, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:", n.Settings.BasePath())
	_, _ = fmt.Fprintln(out, "Config.key:", n.Settings.Key())
	_, _ = fmt.Fprintln(out, "Config.locale:", n.Settings.Locale)
	tz := n.Settings.Timezone
	if tz == "" {
		tz = "Local"
	}
	_, _ = fmt.Fprintln(out, "Config.timezone:", tz)
	_, _ = fmt.Fprintln(out, "Config.export_dir:", n.Settings.ExportDir)
	_, _ = fmt.Fprintln(out, "Config.swipe.cell_px:", n.Settings.CellPx)

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	entries := n.Persistence.Load(ctx)
	_, _ = fmt.Fprintf(out, "Slot: %s\n", n.Persistence.Path())
	switch len(entries) {
	case 0:
		_, _ = fmt.Fprintln(out, "  no entries")
	default:
		first, last := entries[0].Date, entries[0].Date
		for _, e := range entries {
			if e.Date < first {
				first = e.Date
			}
			if e.Date > last {
				last = e.Date
			}
		}
		_, _ = fmt.Fprintf(out, "  %d entries, %s to %s\n", len(entries), first, last)
	}
	return nil
}
