package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each ANSI field contains an escape code for the corresponding color category;
// the lipgloss fields style the summary table.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages.
	Warning string
	// Error indicates failures.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string

	// Header colors table headers.
	Header lipgloss.TerminalColor
	// Border colors table borders.
	Border lipgloss.TerminalColor
	// Accent colors the stage names.
	Accent lipgloss.TerminalColor
	// Dim colors secondary values such as checksums.
	Dim lipgloss.TerminalColor
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Success: "\033[38;5;82m",  // Bright green
		Warning: "\033[38;5;220m", // Yellow
		Error:   "\033[38;5;196m", // Red
		Bold:    "\033[1m",
		Reset:   "\033[0m",
		Header:  lipgloss.Color("#FF8C00"),
		Border:  lipgloss.Color("#FF6600"),
		Accent:  lipgloss.Color("#4488FF"),
		Dim:     lipgloss.Color("#666666"),
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color is provided.
	NoColorTheme = Theme{
		Name:   "none",
		Header: lipgloss.NoColor{},
		Border: lipgloss.NoColor{},
		Accent: lipgloss.NoColor{},
		Dim:    lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// ColorSuccess returns the success escape code of the active theme.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the warning escape code of the active theme.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the error escape code of the active theme.
func ColorError() string { return GetCurrentTheme().Error }

// ColorBold returns the bold escape code of the active theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the reset escape code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }
