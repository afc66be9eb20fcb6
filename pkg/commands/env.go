package commands

import (
	"time"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/commands/options"
	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/store"
)

// journal bundles what every subcommand needs once config is resolved.
type journal struct {
	Settings  *store.Settings
	Service   *app.Service
	Formatter entry.Formatter
}

// loadJournal reads config and opens the slot. A non-empty --on pins "today".
func loadJournal(on *options.OnOptions) (*journal, error) {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	loc, err := settings.Location()
	if err != nil {
		return nil, err
	}
	var clock func() time.Time
	if on != nil {
		if clock, err = on.Clock(loc); err != nil {
			return nil, err
		}
	}
	p, err := store.Load(settings)
	if err != nil {
		return nil, err
	}
	return &journal{
		Settings: settings,
		Service: &app.Service{
			Persistence: p,
			Clock:       clock,
			Location:    loc,
		},
		Formatter: entry.NewFormatter(settings.Locale, loc),
	}, nil
}
