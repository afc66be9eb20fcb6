package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/beyond/pkg/entry"
)

type PrettyPrint struct {
	Out       io.Writer
	ShowID    bool
	Formatter entry.Formatter
	// Width caps the preview column; zero means 60.
	Width int
}

var (
	spacing = strings.Repeat(" ", len("1792390000000  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// History prints one row per entry in the order given.
func (pp *PrettyPrint) History(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	width := pp.Width
	if width <= 0 {
		width = 60
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.FgCyan)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(strconv.FormatInt(e.Timestamp, 10)))
		}
		row = append(row, d.Sprint(pp.Formatter.Label(e)), entry.Preview(e.Text, width))
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Detail prints the full label and text of e.
func (pp *PrettyPrint) Detail(e entry.Entry) {
	pp.Title(pp.Formatter.Label(e))
	if pp.ShowID {
		y := color.New(color.FgHiYellow, color.Italic, color.Faint)
		_, _ = y.Fprintf(pp.out(), "%d\n", e.Timestamp)
	}
	width := pp.Width
	if width <= 0 {
		width = 80
	}
	_, _ = fmt.Fprintln(pp.out(), entry.Wrap(e.Text, width))
}

// Streak prints the current streak and, when longest >= 0, the longest run.
func (pp *PrettyPrint) Streak(current, longest int) {
	s := color.New(color.FgMagenta, color.Bold)
	c := color.New(color.Faint)
	_, _ = s.Fprintf(pp.out(), "%d", current)
	_, _ = c.Fprintln(pp.out(), " "+days(current)+" streak")
	if longest >= 0 {
		_, _ = s.Fprintf(pp.out(), "%d", longest)
		_, _ = c.Fprintln(pp.out(), " "+days(longest)+" longest")
	}
}

func days(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

// JSON prints v as indented JSON.
func JSON(out io.Writer, v interface{}) error {
	if out == nil {
		out = color.Output
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
