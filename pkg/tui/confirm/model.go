// Package confirm asks the user to confirm deleting an entry.
package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/tui/events"
	"tableflip.dev/beyond/pkg/tui/theme"
)

// Model is an inactive prompt until Ask is called.
type Model struct {
	active    bool
	entry     entry.Entry
	formatter entry.Formatter
	styles    theme.ModalTheme
}

// New constructs an inactive prompt.
func New(formatter entry.Formatter, styles theme.ModalTheme) *Model {
	return &Model{formatter: formatter, styles: styles}
}

// Ask activates the prompt for e.
func (m *Model) Ask(e entry.Entry) {
	m.entry = e
	m.active = true
}

// Active reports whether the prompt is waiting for an answer.
func (m *Model) Active() bool {
	return m.active
}

// Update answers the prompt: y or enter confirms, n or esc declines.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "y", "Y", "enter":
		return m.answer(true)
	case "n", "N", "esc", "q":
		return m.answer(false)
	}
	return nil
}

func (m *Model) answer(confirmed bool) tea.Cmd {
	m.active = false
	e := m.entry
	return func() tea.Msg { return events.ConfirmMsg{Entry: e, Confirmed: confirmed} }
}

// View renders the prompt, or nothing while inactive.
func (m *Model) View() string {
	if !m.active {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Delete this entry?"),
		m.styles.Body.Render(fmt.Sprintf("%s: %s", m.formatter.Label(m.entry), entry.Preview(m.entry.Text, 40))),
		"",
		m.styles.Body.Render("y delete · n keep"),
	)
	return m.styles.Frame.Render(body)
}
