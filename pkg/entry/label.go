package entry

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	// DefaultLocale renders Italian labels, e.g. "lun 19 ottobre 2026".
	DefaultLocale = "it_IT"

	layoutLabel = "Mon 2 January 2006"
)

// Formatter renders human readable date labels for entries.
type Formatter struct {
	Locale   monday.Locale
	Location *time.Location
}

// NewFormatter returns a Formatter for the named locale, falling back to
// DefaultLocale when the name is unknown.
func NewFormatter(locale string, loc *time.Location) Formatter {
	l := monday.Locale(strings.TrimSpace(locale))
	if !supported(l) {
		l = monday.Locale(DefaultLocale)
	}
	if loc == nil {
		loc = time.Local
	}
	return Formatter{Locale: l, Location: loc}
}

func supported(l monday.Locale) bool {
	for _, s := range monday.ListLocales() {
		if s == l {
			return true
		}
	}
	return false
}

// Label formats the creation time of e, e.g. "lun 19 ottobre 2026".
func (f Formatter) Label(e Entry) string {
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	return monday.Format(e.Time(loc), layoutLabel, f.Locale)
}

// Preview collapses text onto one line and truncates it to width cells.
func Preview(text string, width int) string {
	line := strings.Join(strings.Fields(text), " ")
	if width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(width), "…")
}

// Wrap word-wraps text to width cells.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
