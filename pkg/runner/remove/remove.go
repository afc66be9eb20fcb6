package remove

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/printers"
)

// ErrDeclined is returned when the confirmation prompt is answered no.
var ErrDeclined = errors.New("delete cancelled")

type Remove struct {
	Service   *app.Service
	Formatter entry.Formatter
	Timestamp int64
	// Confirm is asked before deleting. A nil Confirm deletes without asking.
	Confirm func(entry.Entry) (bool, error)
	JSON    bool
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	e, err := n.Service.Find(ctx, n.Timestamp)
	if err != nil {
		return err
	}
	if n.Confirm != nil {
		ok, err := n.Confirm(e)
		if err != nil {
			return err
		}
		if !ok {
			return ErrDeclined
		}
	}
	if err := n.Service.Delete(ctx, n.Timestamp); err != nil {
		return err
	}

	if n.JSON {
		return printers.JSON(n.Out, map[string]interface{}{
			"deleted": e,
		})
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.FgRed).Fprint(out, "deleted ")
	_, _ = color.New(color.Faint).Fprintln(out, n.Formatter.Label(e))
	return nil
}
