package ui

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/entry"
	tuiapp "tableflip.dev/beyond/pkg/tui/app"
)

type UI struct {
	Service   *app.Service
	Formatter entry.Formatter
	CellPx    int
	ExportDir string
	// Watch follows external writes to the slot while the UI is open.
	Watch bool
}

func (d *UI) Do(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := tuiapp.Options{
		Formatter: d.Formatter,
		CellPx:    d.CellPx,
		ExportDir: d.ExportDir,
	}
	if d.Watch {
		events, err := d.Service.Watch(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ui: watch disabled: %v\n", err)
		} else {
			opts.Events = events
		}
	}

	return tuiapp.Run(d.Service, opts)
}
