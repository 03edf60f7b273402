package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	emailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			MarginBottom(1)

	emailHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	incorrectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	gradeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	meterFilled = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	meterEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// strengthColor maps a strength label to a display color
func strengthColor(strength string) lipgloss.Style {
	switch strength {
	case "Güçlü":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	case "Orta":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	case "Zayıf":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	}
}
