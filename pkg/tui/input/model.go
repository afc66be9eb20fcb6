// Package input is the daily text entry panel.
package input

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/beyond/pkg/tui/events"
	"tableflip.dev/beyond/pkg/tui/theme"
)

// State is the visible face of the panel.
type State int

const (
	// AwaitingInput shows the text field and save action.
	AwaitingInput State = iota
	// Completed shows the confirmation message instead.
	Completed
)

func (s State) String() string {
	if s == Completed {
		return "completed"
	}
	return "awaiting-input"
}

const completedMessage = "Today's entry is saved. See you tomorrow."

// Model wraps a text input that is hidden once today's entry exists.
type Model struct {
	state  State
	input  textinput.Model
	width  int
	styles theme.InputTheme
}

// New constructs a panel awaiting input.
func New(styles theme.InputTheme) *Model {
	ti := textinput.New()
	ti.Placeholder = "How did today go?"
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline
	return &Model{input: ti, styles: styles, width: 60}
}

// State returns the current state.
func (m *Model) State() State {
	return m.state
}

// SetCompleted switches between the two faces. The field loses focus when
// the panel is completed.
func (m *Model) SetCompleted(done bool) {
	if done {
		m.state = Completed
		m.input.Blur()
		return
	}
	m.state = AwaitingInput
}

// Focus gives the text field the keyboard, unless the panel is completed.
func (m *Model) Focus() tea.Cmd {
	if m.state == Completed {
		return nil
	}
	return m.input.Focus()
}

// Blur releases the keyboard.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the text field has the keyboard.
func (m *Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the raw text.
func (m *Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the text.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
}

// Reset clears the text field.
func (m *Model) Reset() {
	m.input.Reset()
}

// SetWidth sets the panel width.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.SetWidth(max(width-m.styles.Frame.GetHorizontalFrameSize()-len(prompt), 10))
}

const prompt = "Today: "

// Update edits the text and emits SubmitMsg on enter.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.state == Completed || !m.input.Focused() {
		return nil
	}
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
		text := m.input.Value()
		return func() tea.Msg { return events.SubmitMsg{Text: text} }
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders whichever face is active.
func (m *Model) View() string {
	frame := m.styles.Frame.Width(m.width)
	if m.state == Completed {
		return frame.Render(m.styles.Message.Render(completedMessage))
	}
	return frame.Render(m.styles.Prompt.Render(prompt) + m.input.View())
}
