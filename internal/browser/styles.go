package browser

import "github.com/charmbracelet/lipgloss"

// Color constants shared across browser views.
const (
	primaryColor = "#06B6D4" // Cyan
	accentColor  = "#D946EF" // Magenta
	dateColor    = "#EAB308" // Yellow
	dimColor     = "#6B7280" // Gray
	errorColor   = "#EF4444" // Red
	okColor      = "#10B981" // Green
)

// Style variables for consistent rendering.
var (
	// TitleStyle renders view titles.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// HelpStyle renders the keybinding hint line.
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// SelectedStyle highlights the selected list row.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(okColor)).
			Bold(true)

	// IDStyle renders session ids.
	IDStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(primaryColor))

	// AgentStyle marks agent sessions.
	AgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor))

	// MainStyle marks main sessions.
	MainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	// DateStyle renders timestamps.
	DateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dateColor))

	// LabelStyle renders metadata field names in the detail view.
	LabelStyle = lipgloss.NewStyle().Bold(true)

	// RoleStyle renders conversation role headers.
	RoleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// StatusStyle renders the status bar.
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// ErrorStyle renders error and warning messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))
)
