package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/stardustlabs/stardust/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Night      lipgloss.Color
	Selected   lipgloss.Color
	Completed  lipgloss.Color
	Meteor     lipgloss.Color
	TitleText  lipgloss.Color
	FooterText lipgloss.Color
}{
	Primary:    lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Night:      lipgloss.Color("#10132B"), // Deep night blue
	Selected:   lipgloss.Color("#FFEAA7"), // Yellow highlight
	Completed:  lipgloss.Color("#FFFFFF"), // Completed stars burn white
	Meteor:     lipgloss.Color("#FF7675"), // Falling star trail
	TitleText:  lipgloss.Color("#DFE6E9"), // Light gray
	FooterText: lipgloss.Color("#B2BEC3"), // Lighter gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header      lipgloss.Style
	ScopeTab    lipgloss.Style
	ScopeActive lipgloss.Style
	TrailLink   lipgloss.Style

	// Sky
	Sky          lipgloss.Style
	StarSelected lipgloss.Style

	// List view
	ListTitle     lipgloss.Style
	ListItem      lipgloss.Style
	ListSelected  lipgloss.Style
	ListCompleted lipgloss.Style

	// Profile view
	ProfileTitle lipgloss.Style
	ProfileLabel lipgloss.Style
	ProfileValue lipgloss.Style

	// Overlays
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style
	Input        lipgloss.Style

	// Notification
	Notification lipgloss.Style

	// Footer
	Footer   lipgloss.Style
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		ScopeTab: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		ScopeActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Selected).
			Padding(0, 1),

		TrailLink: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Sky: lipgloss.NewStyle().
			Background(Colors.Night),

		StarSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Selected),

		ListTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		ListItem: lipgloss.NewStyle().
			Foreground(Colors.TitleText),

		ListSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Selected),

		ListCompleted: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(Colors.Muted),

		ProfileTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		ProfileLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(16),

		ProfileValue: lipgloss.NewStyle().
			Foreground(Colors.TitleText),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.TitleText),

		Input: lipgloss.NewStyle().
			Foreground(Colors.TitleText),

		Notification: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Success).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.FooterText),

		ErrorMsg: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Error),
	}
}

// StarColor returns the foreground color for a task's star.
func StarColor(task *domain.Task) lipgloss.Color {
	if task.Completed {
		return Colors.Completed
	}
	return lipgloss.Color(task.Style().Color)
}

// StarGlyph returns the character used to draw a task's star. Bigger
// difficulties get heavier glyphs; overdue incomplete tasks streak as
// meteors.
func StarGlyph(task *domain.Task, meteor bool) string {
	if meteor {
		return "☄"
	}
	switch task.Difficulty {
	case domain.DifficultyHard:
		return "✹"
	case domain.DifficultyMedium:
		return "★"
	default:
		return "✦"
	}
}
