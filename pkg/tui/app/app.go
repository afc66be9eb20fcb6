// Package app is the Bubble Tea program for beyond: streak banner, daily input
// panel, history with swipe-to-delete, detail view and export.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	appsvc "tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/store"
	"tableflip.dev/beyond/pkg/streak"
	"tableflip.dev/beyond/pkg/tui/confirm"
	"tableflip.dev/beyond/pkg/tui/detail"
	"tableflip.dev/beyond/pkg/tui/events"
	"tableflip.dev/beyond/pkg/tui/history"
	"tableflip.dev/beyond/pkg/tui/input"
	"tableflip.dev/beyond/pkg/tui/theme"
)

type focus int

const (
	focusInput focus = iota
	focusHistory
)

// Options configures presentation and side channels of the program.
type Options struct {
	Formatter entry.Formatter
	// CellPx is how many pixels one terminal column stands for in swipes.
	CellPx    int
	ExportDir string
	// Clipboard receives exported JSON. Defaults to the system clipboard.
	Clipboard func(string) error
	// Events, when set, triggers a reload whenever the slot changes on disk.
	Events <-chan store.Event
}

// Model contains UI state. The journal itself is never cached here: refresh
// re-reads the store and re-derives every region after each mutation.
type Model struct {
	svc  *appsvc.Service
	ctx  context.Context
	opts Options

	theme   theme.Theme
	input   *input.Model
	history *history.Model
	detail  *detail.Model
	confirm *confirm.Model
	focus   focus

	today  string
	streak int

	status    string
	statusErr bool

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the Service.
func New(svc *appsvc.Service, opts Options) *Model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	th := theme.Default()
	m := &Model{
		svc:        svc,
		ctx:        context.Background(),
		opts:       opts,
		theme:      th,
		input:      input.New(th.Input),
		history:    history.New(opts.Formatter, th.History, opts.CellPx),
		detail:     detail.New(opts.Formatter, th.Detail),
		confirm:    confirm.New(opts.Formatter, th.Modal),
		termWidth:  80,
		termHeight: 24,
	}
	m.refresh()
	m.setFocus(focusInput)
	m.applySizes()
	return m
}

// Init starts listening for store changes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), m.waitForChange())
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.opts.Events
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return events.StoreChangedMsg{}
	}
}

// refresh re-derives streak, input state and history from the store.
func (m *Model) refresh() {
	if m.svc == nil {
		return
	}
	entries, err := m.svc.Entries(m.ctx)
	if err != nil {
		m.setError(err)
		return
	}
	m.today = m.svc.Today()
	m.streak = streak.Calculate(entries, m.today)
	done := entry.HasDay(entries, m.today)
	m.input.SetCompleted(done)
	if done && m.focus == focusInput {
		m.setFocus(focusHistory)
	}
	m.history.SetEntries(entries)
	if e, open := m.detail.Entry(); open && entry.IndexOf(entries, e.Timestamp) < 0 {
		m.detail.Close()
	}
	m.applySizes()
}

func (m *Model) setFocus(f focus) tea.Cmd {
	if f == focusInput && m.input.State() == input.AwaitingInput {
		m.focus = focusInput
		m.history.Blur()
		return m.input.Focus()
	}
	m.focus = focusHistory
	m.input.Blur()
	m.history.Focus()
	return nil
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	m.status, m.statusErr = describeError(err), true
}

func describeError(err error) string {
	switch {
	case errors.Is(err, appsvc.ErrEmptyText):
		return "Write something before saving!"
	case errors.Is(err, appsvc.ErrAlreadyWritten):
		return "Today's entry is already written."
	default:
		return err.Error()
	}
}

// Update routes messages: prompt first, then detail, then the focused region.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		return m, nil
	case events.StoreChangedMsg:
		m.refresh()
		return m, m.waitForChange()
	case events.SubmitMsg:
		return m, m.save(msg.Text)
	case events.OpenDetailMsg:
		m.history.CloseAll()
		m.detail.Open(msg.Entry)
		return m, nil
	case events.CloseDetailMsg:
		m.setStatus("")
		return m, nil
	case events.DeleteRequestMsg:
		m.confirm.Ask(msg.Entry)
		return m, nil
	case events.ConfirmMsg:
		m.finishDelete(msg)
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		if m.confirm.Active() {
			return m, nil
		}
		if m.detail.IsOpen() {
			return m, m.detail.Update(msg)
		}
		return m, m.history.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+e":
		m.exportFile()
		return nil
	}
	if m.confirm.Active() {
		return m.confirm.Update(msg)
	}
	if m.detail.IsOpen() {
		return m.detail.Update(msg)
	}
	if m.focus == focusInput {
		switch msg.String() {
		case "tab", "esc":
			m.setFocus(focusHistory)
			return nil
		}
		return m.input.Update(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "tab", "i", "a":
		if m.input.State() == input.Completed {
			m.setStatus("Today's entry is already written.")
			return nil
		}
		return m.setFocus(focusInput)
	case "e":
		m.exportFile()
		return nil
	case "c":
		m.exportClipboard()
		return nil
	case "r":
		m.refresh()
		return nil
	}
	return m.history.Update(msg)
}

// save is the input panel's save action.
func (m *Model) save(text string) tea.Cmd {
	if m.svc == nil {
		return nil
	}
	if _, err := m.svc.Write(m.ctx, text); err != nil {
		m.setError(err)
		return nil
	}
	m.input.Reset()
	m.setStatus("Saved.")
	m.refresh()
	return nil
}

func (m *Model) finishDelete(msg events.ConfirmMsg) {
	if !msg.Confirmed {
		m.history.CloseRow(msg.Entry.Timestamp)
		m.setStatus("Kept.")
		return
	}
	if err := m.svc.Delete(m.ctx, msg.Entry.Timestamp); err != nil {
		m.setError(err)
		m.refresh()
		return
	}
	if e, open := m.detail.Entry(); open && e.Timestamp == msg.Entry.Timestamp {
		m.detail.Close()
	}
	m.setStatus("Deleted.")
	m.refresh()
	if msg.Entry.Date == m.today && m.input.State() == input.AwaitingInput {
		m.setFocus(focusInput)
	}
}

func (m *Model) exportFile() {
	path, err := m.svc.ExportFile(m.ctx, m.opts.ExportDir)
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus("Exported to " + path)
}

func (m *Model) exportClipboard() {
	data, err := m.svc.ExportBytes(m.ctx)
	if err != nil {
		m.setError(err)
		return
	}
	if err := m.opts.Clipboard(string(data)); err != nil {
		m.setError(fmt.Errorf("clipboard: %w", err))
		return
	}
	m.setStatus("Copied backup to clipboard.")
}

// applySizes lays the regions out and tells the history where it starts so
// mouse rows can be hit tested.
func (m *Model) applySizes() {
	width := m.termWidth
	if width < 30 {
		width = 30
	}
	m.input.SetWidth(width)
	top := lipgloss.Height(m.renderHeader()) + 1 + lipgloss.Height(m.input.View()) + 1
	listHeight := m.termHeight - top - 3
	if listHeight < 3 {
		listHeight = 3
	}
	m.history.SetTop(top)
	m.history.SetSize(width, listHeight)
	m.detail.SetSize(width, listHeight)
}

func (m *Model) renderHeader() string {
	unit := "days"
	if m.streak == 1 {
		unit = "day"
	}
	h := m.theme.Header
	return h.Title.Render("beyond") + "  " +
		h.Streak.Render(fmt.Sprintf("%d", m.streak)) + " " +
		h.Label.Render(unit+" streak · "+m.today)
}

func (m *Model) renderFooter() string {
	f := m.theme.Footer
	status := f.Status.Render(m.status)
	if m.statusErr {
		status = f.Error.Render(m.status)
	}
	var help string
	switch {
	case m.confirm.Active():
		help = "y delete · n keep"
	case m.detail.IsOpen():
		help = "esc back"
	case m.focus == focusInput:
		help = "enter save · tab history · ctrl+c quit"
	default:
		help = "j/k move · enter open · ←/swipe delete · i write · e export · c copy · q quit"
	}
	return status + "\n" + f.Help.Render(help)
}

// View renders header, input panel, history or detail, and the footer.
func (m *Model) View() string {
	sections := []string{m.renderHeader(), "", m.input.View(), ""}
	if m.detail.IsOpen() {
		sections = append(sections, m.detail.View())
	} else {
		sections = append(sections, m.history.View())
	}
	if m.confirm.Active() {
		sections = append(sections, "", m.confirm.View())
	}
	sections = append(sections, "", m.renderFooter())
	return strings.Join(sections, "\n")
}

// Run launches the interactive TUI program.
func Run(svc *appsvc.Service, opts Options) error {
	p := tea.NewProgram(New(svc, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
