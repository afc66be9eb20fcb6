package streak

import (
	"context"
	"io"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/printers"
	"tableflip.dev/beyond/pkg/streak"
)

type Streak struct {
	Service *app.Service
	// All adds the longest run ever recorded.
	All  bool
	JSON bool
	Out  io.Writer
}

type summary struct {
	Today   string `json:"today"`
	Current int    `json:"current"`
	Longest *int   `json:"longest,omitempty"`
	Written bool   `json:"written"`
}

func (n *Streak) Do(ctx context.Context) error {
	entries, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	today := n.Service.Today()

	s := summary{
		Today:   today,
		Current: streak.Calculate(entries, today),
	}
	for _, e := range entries {
		if e.Date == today {
			s.Written = true
			break
		}
	}
	longest := -1
	if n.All {
		longest = streak.Longest(entries)
		s.Longest = &longest
	}

	if n.JSON {
		return printers.JSON(n.Out, s)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Streak(s.Current, longest)
	return nil
}
