package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle uses plain ANSI colors so the palette degrades cleanly on
	// basic terminals.
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	RuleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	FinishStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)
