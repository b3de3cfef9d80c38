// internal/render/style.go
package render

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the report renderer and the TUI
var (
	Cyan    = lipgloss.Color("#00E5FF") // Primary highlight
	Magenta = lipgloss.Color("#FF1B6B") // Accent
	Yellow  = lipgloss.Color("#FFB500") // Warnings
	Green   = lipgloss.Color("#2AFFAA") // Success / totals
	Red     = lipgloss.Color("#FF5555") // Errors
	Base01  = lipgloss.Color("#6C7280") // Muted text
	Base2   = lipgloss.Color("#ECEFF4") // Primary text
)

var (
	// TitleStyle renders report and pane headers
	TitleStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	// SectionStyle renders section headings inside the report
	SectionStyle = lipgloss.NewStyle().
			Foreground(Magenta).
			Bold(true)

	// LabelStyle renders field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(Base01)

	// ValueStyle renders field values
	ValueStyle = lipgloss.NewStyle().
			Foreground(Base2)

	// TotalStyle highlights the bottom-line figures
	TotalStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle renders validation failures in the TUI
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// MutedStyle renders descriptions and help text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Base01).
			Italic(true)
)
