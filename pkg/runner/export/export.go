package export

import (
	"context"
	"io"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/printers"
)

type Export struct {
	Service *app.Service
	// Dir receives beyond_backup_<day>.json.
	Dir       string
	Stdout    bool
	Clipboard bool
	// Copy replaces clipboard.WriteAll.
	Copy func(string) error
	JSON bool
	Out  io.Writer
}

func (n *Export) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Export) Do(ctx context.Context) error {
	switch {
	case n.Stdout:
		return n.Service.Export(ctx, n.out())

	case n.Clipboard:
		b, err := n.Service.ExportBytes(ctx)
		if err != nil {
			return err
		}
		cp := n.Copy
		if cp == nil {
			cp = clipboard.WriteAll
		}
		if err := cp(string(b)); err != nil {
			return err
		}
		if n.JSON {
			return printers.JSON(n.Out, map[string]interface{}{"clipboard": true, "bytes": len(b)})
		}
		_, _ = color.New(color.FgGreen).Fprintln(n.out(), "backup copied to clipboard")
		return nil
	}

	dir := n.Dir
	if dir == "" {
		dir = "."
	}
	path, err := n.Service.ExportFile(ctx, dir)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, map[string]string{"path": path})
	}
	_, _ = color.New(color.FgGreen).Fprint(n.out(), "backup written to ")
	_, _ = color.New(color.Bold).Fprintln(n.out(), path)
	return nil
}
