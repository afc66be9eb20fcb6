package restore

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/printers"
)

// Restore merges a backup written by export into the journal.
type Restore struct {
	Service *app.Service
	// Path of the backup, "-" reads In.
	Path string
	In   io.Reader
	JSON bool
	Out  io.Writer
}

func (n *Restore) Do(ctx context.Context) error {
	var r io.Reader
	if n.Path == "-" {
		r = n.In
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(n.Path)
		if err != nil {
			return fmt.Errorf("open backup: %w", err)
		}
		defer f.Close()
		r = f
	}

	added, err := n.Service.Import(ctx, r)
	if err != nil {
		return err
	}

	if n.JSON {
		return printers.JSON(n.Out, map[string]int{"imported": added})
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.FgGreen).Fprintf(out, "imported %d ", added)
	switch added {
	case 1:
		_, _ = fmt.Fprintln(out, "entry")
	default:
		_, _ = fmt.Fprintln(out, "entries")
	}
	return nil
}
