// Package tui provides the terminal user interface for stardust.
package tui

// Screen represents the main view being displayed.
type Screen int

const (
	ScreenSky     Screen = iota // Star field canvas
	ScreenList                  // Flat task list
	ScreenProfile               // Completion stats
)

// String returns the string representation of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenSky:
		return "sky"
	case ScreenList:
		return "list"
	case ScreenProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Mode represents the current UI mode layered on top of the screen.
type Mode int

const (
	ModeNormal         Mode = iota // Default navigation mode
	ModeWelcome                    // First-run welcome overlay
	ModeHelp                       // Help overlay mode
	ModeInputTitle                 // Title input mode (for new star)
	ModeInputDesc                  // Description input mode (for new star)
	ModePickCategory               // Category picker mode
	ModePickDifficulty             // Difficulty picker mode
	ModeConfirmDelete              // Delete confirmation mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeWelcome:
		return "welcome"
	case ModeHelp:
		return "help"
	case ModeInputTitle:
		return "input_title"
	case ModeInputDesc:
		return "input_desc"
	case ModePickCategory:
		return "pick_category"
	case ModePickDifficulty:
		return "pick_difficulty"
	case ModeConfirmDelete:
		return "confirm_delete"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputTitle, ModeInputDesc:
		return true
	case ModeNormal, ModeWelcome, ModeHelp, ModePickCategory, ModePickDifficulty, ModeConfirmDelete:
		return false
	}
	return false
}
