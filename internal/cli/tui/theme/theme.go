// Package theme centralizes the lipgloss styles used by the wizard.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("99")
	colorError   = lipgloss.Color("196")
	colorStatus  = lipgloss.Color("245")
)

func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
}

func StatusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorStatus)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}
