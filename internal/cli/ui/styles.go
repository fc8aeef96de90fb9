package ui

import "github.com/charmbracelet/lipgloss"

// Styles defines all lipgloss styles used in the CLI
var Styles = struct {
	Bold   lipgloss.Style
	Header lipgloss.Style
	Dim    lipgloss.Style
}{
	Bold: lipgloss.NewStyle().Bold(true),

	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("81")),

	Dim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")),
}
