// Package theme centralizes Lip Gloss styles for the dashboard TUI.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the styles used across panes.
type Theme struct {
	PaneTitle    lipgloss.Style
	SectionTitle lipgloss.Style
	SectionCount lipgloss.Style
	Task         lipgloss.Style
	TaskDone     lipgloss.Style
	TaskOverdue  lipgloss.Style
	Cursor       lipgloss.Style
	Badge        lipgloss.Style
	Hint         lipgloss.Style
	Status       lipgloss.Style
	Dragging     lipgloss.Style

	CalHeader   lipgloss.Style
	CalEmpty    lipgloss.Style
	CalBusy     lipgloss.Style
	CalToday    lipgloss.Style
	CalSelected lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		PaneTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		SectionTitle: lipgloss.NewStyle().Bold(true),
		SectionCount: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Task:         lipgloss.NewStyle(),
		TaskDone:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		TaskOverdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Hint:         lipgloss.NewStyle().Faint(true).Italic(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dragging:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),

		CalHeader:   lipgloss.NewStyle().Faint(true),
		CalEmpty:    lipgloss.NewStyle().Faint(true),
		CalBusy:     lipgloss.NewStyle().Bold(true),
		CalToday:    lipgloss.NewStyle().Underline(true),
		CalSelected: lipgloss.NewStyle().Reverse(true),
	}
}
