// Package history renders the journal history and its swipe-to-delete rows.
package history

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-runewidth"

	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/tui/events"
	"tableflip.dev/beyond/pkg/tui/swipe"
	"tableflip.dev/beyond/pkg/tui/theme"
)

const (
	rowHeight   = 2
	titleHeight = 1
	actionLabel = "delete"
)

// Model is the history list. Rows are re-derived from every snapshot passed
// to SetEntries; the only state kept across snapshots is the cursor and the
// swipe tracker.
type Model struct {
	rows    []entry.Entry
	tracker *swipe.Tracker

	cursor int
	scroll int

	width  int
	height int
	// top is the screen row of the title line, used for mouse hit testing.
	top int
	// cellPx is how many pixels one terminal column stands for.
	cellPx int

	focused   bool
	formatter entry.Formatter
	styles    theme.HistoryTheme
}

// New constructs an empty history list.
func New(formatter entry.Formatter, styles theme.HistoryTheme, cellPx int) *Model {
	if cellPx <= 0 {
		cellPx = 10
	}
	return &Model{
		tracker:   swipe.NewTracker(),
		cellPx:    cellPx,
		formatter: formatter,
		styles:    styles,
		width:     60,
		height:    10,
	}
}

// SetEntries replaces the rows with a fresh snapshot, newest first.
func (m *Model) SetEntries(entries []entry.Entry) {
	m.rows = entry.SortByTimestampDesc(entries)
	keep := make(map[int64]struct{}, len(m.rows))
	for _, e := range m.rows {
		keep[e.Timestamp] = struct{}{}
	}
	m.tracker.Retain(keep)
	m.clampCursor()
}

// Rows returns the rendered order.
func (m *Model) Rows() []entry.Entry {
	return m.rows
}

// SetSize sets the drawable area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampCursor()
}

// SetTop records the screen row the list starts on.
func (m *Model) SetTop(top int) {
	m.top = top
}

// RowY returns the screen row of the first line of row i.
func (m *Model) RowY(i int) int {
	return m.top + titleHeight + (i-m.scroll)*rowHeight
}

// Focus and Blur toggle keyboard handling.
func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur()  { m.focused = false }

// Focused reports whether the list handles keys.
func (m *Model) Focused() bool { return m.focused }

// Cursor returns the selected row index.
func (m *Model) Cursor() int { return m.cursor }

// Selected returns the entry under the cursor.
func (m *Model) Selected() (entry.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return entry.Entry{}, false
	}
	return m.rows[m.cursor], true
}

// RowState returns the swipe state of the row with the given timestamp.
func (m *Model) RowState(timestamp int64) swipe.State {
	return m.tracker.State(timestamp)
}

// CloseRow snaps a row closed, e.g. after a declined delete.
func (m *Model) CloseRow(timestamp int64) {
	m.tracker.Close(timestamp)
}

// CloseAll snaps every row closed.
func (m *Model) CloseAll() {
	m.tracker.CloseAll()
}

func (m *Model) Init() tea.Cmd { return nil }

// Update handles mouse gestures always and keys only while focused.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button != tea.MouseLeft {
			return nil
		}
		idx, ok := m.rowAt(mouse.Y)
		if !ok {
			return nil
		}
		m.cursor = idx
		m.tracker.Start(m.rows[idx].Timestamp, mouse.X*m.cellPx)
	case tea.MouseMotionMsg:
		if _, ok := m.tracker.Dragging(); ok {
			m.tracker.Move(msg.Mouse().X * m.cellPx)
		}
	case tea.MouseReleaseMsg:
		mouse := msg.Mouse()
		out, ok := m.tracker.End(mouse.X * m.cellPx)
		if !ok {
			return nil
		}
		return m.resolve(out, mouse.X)
	case tea.KeyPressMsg:
		if !m.focused {
			return nil
		}
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "home", "g":
		m.cursor = 0
		m.clampCursor()
	case "end", "G":
		m.cursor = len(m.rows) - 1
		m.clampCursor()
	case "left", "h":
		if e, ok := m.Selected(); ok {
			m.tracker.Reveal(e.Timestamp)
		}
	case "right", "l", "esc":
		if e, ok := m.Selected(); ok {
			m.tracker.Close(e.Timestamp)
		}
	case "enter":
		e, ok := m.Selected()
		if !ok {
			return nil
		}
		if m.tracker.State(e.Timestamp) == swipe.Open {
			return deleteRequest(e)
		}
		return openDetail(e)
	case "d", "x", "delete":
		e, ok := m.Selected()
		if !ok {
			return nil
		}
		m.tracker.Reveal(e.Timestamp)
		return deleteRequest(e)
	}
	return nil
}

func (m *Model) move(delta int) {
	if e, ok := m.Selected(); ok {
		m.tracker.Close(e.Timestamp)
	}
	m.cursor += delta
	m.clampCursor()
}

// resolve turns a finished gesture into a command. x is the release column.
func (m *Model) resolve(out swipe.Outcome, x int) tea.Cmd {
	idx := m.indexOf(out.ID)
	if idx < 0 || out.Result != swipe.ResultTap {
		return nil
	}
	e := m.rows[idx]
	if !out.WasOpen {
		return openDetail(e)
	}
	if x >= m.width-m.revealCells() {
		m.tracker.Reveal(e.Timestamp)
		return deleteRequest(e)
	}
	return nil
}

func openDetail(e entry.Entry) tea.Cmd {
	return func() tea.Msg { return events.OpenDetailMsg{Entry: e} }
}

func deleteRequest(e entry.Entry) tea.Cmd {
	return func() tea.Msg { return events.DeleteRequestMsg{Entry: e} }
}

func (m *Model) indexOf(timestamp int64) int {
	return entry.IndexOf(m.rows, timestamp)
}

// rowAt maps a screen row to a history row.
func (m *Model) rowAt(y int) (int, bool) {
	rel := y - m.top - titleHeight
	if rel < 0 {
		return 0, false
	}
	idx := m.scroll + rel/rowHeight
	if idx >= len(m.rows) || rel/rowHeight >= m.visibleRows() {
		return 0, false
	}
	return idx, true
}

func (m *Model) visibleRows() int {
	n := (m.height - titleHeight) / rowHeight
	if n < 1 {
		return 1
	}
	return n
}

func (m *Model) revealCells() int {
	return -swipe.OpenOffset / m.cellPx
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	visible := m.visibleRows()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
	if m.scroll > len(m.rows)-visible {
		m.scroll = len(m.rows) - visible
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// View renders the title line followed by two lines per visible row.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("History"))
	if len(m.rows) == 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Empty.Render("  no entries yet"))
		return b.String()
	}
	end := m.scroll + m.visibleRows()
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.scroll; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.renderRow(i))
	}
	return b.String()
}

func (m *Model) renderRow(i int) string {
	e := m.rows[i]
	width := m.width
	if width < 12 {
		width = 12
	}
	marker := "  "
	if i == m.cursor {
		marker = "→ "
	}
	shift := -m.tracker.Offset(e.Timestamp) / m.cellPx
	if shift > width-len(marker) {
		shift = width - len(marker)
	}
	inner := width - len(marker)

	label := slide(m.formatter.Label(e), shift, inner)
	preview := slide(entry.Preview(e.Text, inner), shift, inner)

	dateStyle, textStyle := m.styles.Date, m.styles.Text
	if i == m.cursor && m.focused {
		dateStyle, textStyle = m.styles.Selected, m.styles.Selected
	}
	action := ""
	if shift > 0 {
		action = m.styles.Action.Render(fit(actionLabel, shift))
	}
	return marker + dateStyle.Render(label) + action + "\n" +
		"  " + textStyle.Render(preview) + strings.Repeat(" ", shift)
}

// slide drops shift cells from the left of s and pads the rest to width-shift.
func slide(s string, shift, width int) string {
	dropped := 0
	var rest strings.Builder
	for _, r := range s {
		if dropped < shift {
			dropped += runewidth.RuneWidth(r)
			continue
		}
		rest.WriteRune(r)
	}
	visible := width - shift
	if visible < 0 {
		visible = 0
	}
	return runewidth.FillRight(runewidth.Truncate(rest.String(), visible, ""), visible)
}

// fit centers label in exactly n cells, truncating when it does not fit.
func fit(label string, n int) string {
	if n <= 0 {
		return ""
	}
	w := runewidth.StringWidth(label)
	if w >= n {
		return runewidth.Truncate(label, n, "")
	}
	left := (n - w) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", n-w-left)
}
