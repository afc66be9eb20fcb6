// Package detail shows one journal entry in full.
package detail

import (
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/tui/events"
	"tableflip.dev/beyond/pkg/tui/theme"
)

// Model is closed until Open is called; the back action closes it again.
type Model struct {
	open      bool
	entry     entry.Entry
	viewport  viewport.Model
	width     int
	height    int
	wrap      int
	formatter entry.Formatter
	styles    theme.DetailTheme
}

// New constructs a closed detail view.
func New(formatter entry.Formatter, styles theme.DetailTheme) *Model {
	vp := viewport.New(
		viewport.WithWidth(40),
		viewport.WithHeight(8),
	)
	vp.MouseWheelEnabled = true
	m := &Model{
		viewport:  vp,
		formatter: formatter,
		styles:    styles,
	}
	m.SetSize(44, 12)
	return m
}

// Open shows e.
func (m *Model) Open(e entry.Entry) {
	m.entry = e
	m.open = true
	m.render()
	m.viewport.SetYOffset(0)
}

// Close returns to the history.
func (m *Model) Close() {
	m.open = false
}

// IsOpen reports whether an entry is shown.
func (m *Model) IsOpen() bool {
	return m.open
}

// Entry returns the shown entry.
func (m *Model) Entry() (entry.Entry, bool) {
	return m.entry, m.open
}

// SetSize configures the frame and re-wraps the text.
func (m *Model) SetSize(width, height int) {
	width = max(width, 20)
	height = max(height, 6)
	m.width, m.height = width, height

	innerWidth := max(width-m.styles.Frame.GetHorizontalFrameSize(), 1)
	// date line, blank line and help line sit outside the viewport
	innerHeight := max(height-m.styles.Frame.GetVerticalFrameSize()-3, 1)
	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)
	m.wrap = innerWidth
	m.render()
}

func (m *Model) render() {
	m.viewport.SetContent(entry.Wrap(m.entry.Text, m.wrap))
}

// Update scrolls the text and handles the back action.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc", "q", "backspace", "left", "h":
			m.Close()
			return func() tea.Msg { return events.CloseDetailMsg{} }
		}
	}
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return cmd
}

// View renders the full label and text, or nothing while closed.
func (m *Model) View() string {
	if !m.open {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Date.Render(m.formatter.Label(m.entry)),
		"",
		m.styles.Body.Render(m.viewport.View()),
		m.styles.Help.Render("esc back · j/k scroll"),
	)
	return m.styles.Frame.Width(m.width).Render(body)
}
