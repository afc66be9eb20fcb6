package write

import (
	"context"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/printers"
)

type Write struct {
	Service   *app.Service
	Formatter entry.Formatter
	Text      string
	JSON      bool
	Out       io.Writer
}

func (n *Write) Do(ctx context.Context) error {
	e, err := n.Service.Write(ctx, n.Text)
	if err != nil {
		return err
	}
	streak, err := n.Service.Streak(ctx)
	if err != nil {
		return err
	}

	if n.JSON {
		return printers.JSON(n.Out, struct {
			Entry  entry.Entry `json:"entry"`
			Streak int         `json:"streak"`
		}{Entry: e, Streak: streak})
	}

	pp := printers.PrettyPrint{Out: n.Out, Formatter: n.Formatter}
	pp.Detail(e)
	pp.NewLine()
	pp.Streak(streak, -1)

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.Faint).Fprintln(out, "See you tomorrow.")
	return nil
}
