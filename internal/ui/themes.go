package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the lipgloss styles clipresent renders category labels
// through. Each field is a complete style (foreground color plus any
// weight); callers call Render(text) rather than concatenating escape
// codes and a reset.
type Theme struct {
	Name      string
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Bold      lipgloss.Style
	Underline lipgloss.Style
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Bold:      lipgloss.NewStyle().Bold(true),
		Underline: lipgloss.NewStyle().Underline(true),
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("54")),
		Bold:      lipgloss.NewStyle().Bold(true),
		Underline: lipgloss.NewStyle().Underline(true),
	}

	// NoColorTheme disables all color. Bold and Underline remain active,
	// since those are weights rather than colors.
	NoColorTheme = Theme{
		Name:      "none",
		Primary:   lipgloss.NewStyle().Foreground(lipgloss.NoColor{}),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.NoColor{}),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.NoColor{}),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.NoColor{}),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.NoColor{}),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.NoColor{}),
		Bold:      lipgloss.NewStyle().Bold(true),
		Underline: lipgloss.NewStyle().Underline(true),
	}

	// currentTheme is the active theme used throughout the CLI.
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
// Primarily used by tests to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name: "dark", "light", or "none".
// Unknown names fall back to dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "dark":
		currentTheme = DarkTheme
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme from the noColor argument and the NO_COLOR
// environment variable (https://no-color.org/). noColor takes precedence
// over NO_COLOR, which takes precedence over the dark default.
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
