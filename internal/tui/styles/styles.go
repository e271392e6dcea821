// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines the Blogify rose palette, borders, and text styles

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#F43F5E") // Rose
	Secondary = lipgloss.Color("#EC4899") // Pink
	Success   = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#DC2626") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Accent    = lipgloss.Color("#FB7185") // Lighter rose for highlights

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Key style for keyboard shortcuts
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Value style for emphasized data
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// Toggle indicators on the post page
	LikeOn = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	FavoriteOn = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	ToggleOff = lipgloss.NewStyle().
			Foreground(Muted)

	// Selected row in lists
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Draft/published badges
	BadgeDraft = lipgloss.NewStyle().
			Foreground(Warning)

	BadgePublished = lipgloss.NewStyle().
			Foreground(Success)
)
