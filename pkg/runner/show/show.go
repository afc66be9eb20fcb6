package show

import (
	"context"
	"io"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/printers"
)

type Show struct {
	Service   *app.Service
	Formatter entry.Formatter
	Timestamp int64
	JSON      bool
	Out       io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	e, err := n.Service.Find(ctx, n.Timestamp)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, e)
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowID: true, Formatter: n.Formatter}
	pp.Detail(e)
	return nil
}
