package list

import (
	"context"
	"io"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/printers"
	"tableflip.dev/beyond/pkg/timeutil"
)

type List struct {
	Service   *app.Service
	Formatter entry.Formatter
	ShowID    bool
	// Limit caps the number of rows; zero lists everything.
	Limit int
	// Since is a window such as "2w"; only entries inside it are listed.
	Since string
	JSON  bool
	Out   io.Writer
}

func (n *List) Do(ctx context.Context) error {
	days, window, err := timeutil.ParseWindow(n.Since)
	if err != nil {
		return err
	}
	history, err := n.Service.History(ctx)
	if err != nil {
		return err
	}
	title := "History"
	if days > 0 {
		from := timeutil.FirstDay(n.Service.Today(), days)
		kept := history[:0:0]
		for _, e := range history {
			if e.Date >= from {
				kept = append(kept, e)
			}
		}
		history = kept
		title = "History, last " + window
	}
	if n.Limit > 0 && len(history) > n.Limit {
		history = history[:n.Limit]
	}

	if n.JSON {
		if history == nil {
			history = []entry.Entry{}
		}
		return printers.JSON(n.Out, history)
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID, Formatter: n.Formatter}
	pp.TitleWithCount(title, len(history))
	pp.History(history...)
	return nil
}
