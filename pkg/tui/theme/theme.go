package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header  HeaderTheme
	Input   InputTheme
	History HistoryTheme
	Detail  DetailTheme
	Footer  FooterTheme
	Modal   ModalTheme
}

// HeaderTheme styles the streak banner.
type HeaderTheme struct {
	Title  lipgloss.Style
	Streak lipgloss.Style
	Label  lipgloss.Style
}

// InputTheme styles the daily input panel.
type InputTheme struct {
	Prompt  lipgloss.Style
	Message lipgloss.Style
	Frame   lipgloss.Style
}

// HistoryTheme styles history rows.
type HistoryTheme struct {
	Title    lipgloss.Style
	Date     lipgloss.Style
	Text     lipgloss.Style
	Selected lipgloss.Style
	Action   lipgloss.Style
	Empty    lipgloss.Style
}

// DetailTheme styles the full-text detail view.
type DetailTheme struct {
	Frame lipgloss.Style
	Date  lipgloss.Style
	Body  lipgloss.Style
	Help  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// ModalTheme styles centered prompts (delete confirmation).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	return Theme{
		Header: HeaderTheme{
			Title:  lipgloss.NewStyle().Bold(true),
			Streak: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Label:  lipgloss.NewStyle().Foreground(muted),
		},
		Input: InputTheme{
			Prompt:  lipgloss.NewStyle().Foreground(accent),
			Message: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Italic(true),
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
		},
		History: HistoryTheme{
			Title:    lipgloss.NewStyle().Bold(true).Underline(true),
			Date:     lipgloss.NewStyle().Foreground(muted),
			Text:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(accent),
			Action: lipgloss.NewStyle().
				Foreground(lipgloss.Color("231")).
				Background(lipgloss.Color("160")),
			Empty: lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Detail: DetailTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Date: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Body: lipgloss.NewStyle(),
			Help: lipgloss.NewStyle().Foreground(muted),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
