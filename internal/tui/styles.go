package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Shared lipgloss styles for the feed browser.
//
//nolint:gochecknoglobals // Styles are intentionally package-level, mirroring lipgloss usage.
var (
	// HeaderStyle renders section headings.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	// LabelStyle renders field labels in detail views.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// ValueStyle renders field values in detail views.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// SubtleStyle renders help text and footers.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// ErrorStyle renders fetch failures.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// SelectedRowStyle highlights the selected list row.
	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	// BoxStyle wraps detail views in a rounded border.
	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)
