package preview

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")
	errorColor   = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	viewportStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	labelStyle    = lipgloss.NewStyle().Width(16)
	propertyStyle = lipgloss.NewStyle().Width(20).Foreground(mutedColor)
	valueStyle    = lipgloss.NewStyle().Bold(true)
	pinnedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle    = lipgloss.NewStyle().Foreground(errorColor)
	barStyle      = lipgloss.NewStyle().Foreground(primaryColor)
	helpStyle     = lipgloss.NewStyle().MarginTop(1)
)
