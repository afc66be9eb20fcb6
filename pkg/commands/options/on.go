package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/entry"
)

const (
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Act as if today were the given day, example: --on="2026-10-19" or --on="10/19".`)
}

// GetOn returns nil when --on was not given. The short form keeps the
// current year.
func (o *OnOptions) GetOn(loc *time.Location) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := entry.ParseDay(o.OnString, loc)
	if err != nil {
		s, serr := time.ParseInLocation(layoutISOShort, o.OnString, loc)
		if serr != nil {
			return nil, err
		}
		t = s.AddDate(time.Now().In(loc).Year(), 0, 0)
	}
	// Noon keeps the day stable across DST shifts.
	t = t.Add(12 * time.Hour)
	return &t, nil
}

// Clock returns a clock pinned to the --on day, or nil for wall time.
func (o *OnOptions) Clock(loc *time.Location) (func() time.Time, error) {
	on, err := o.GetOn(loc)
	if err != nil || on == nil {
		return nil, err
	}
	pinned := *on
	return func() time.Time { return pinned }, nil
}
