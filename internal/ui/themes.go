// Package ui provides theme and color support for the spiral tool's output.
// It defines color schemes, a per-ring palette for rendered grids, and
// terminal detection so colors are only emitted to interactive terminals.
package ui

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for headers and the spiral center.
	Primary string
	// Secondary is used for empty grid cells and less prominent elements.
	Secondary string
	// Success indicates positive outcomes, such as matching digests.
	Success string
	// Warning is used for durations and non-critical issues.
	Warning string
	// Error indicates failures.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
	// Rings colors successive rings of a rendered grid, cycling when there
	// are more rings than entries.
	Rings []string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;240m", // Dim grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
		Rings: []string{
			"\033[38;5;231m", // White
			"\033[38;5;45m",  // Cyan
			"\033[38;5;141m", // Purple
			"\033[38;5;214m", // Orange
			"\033[38;5;118m", // Green
			"\033[38;5;205m", // Pink
		},
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;250m", // Light grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
		Rings: []string{
			"\033[38;5;16m",  // Black
			"\033[38;5;25m",  // Blue
			"\033[38;5;90m",  // Plum
			"\033[38;5;166m", // Rust
			"\033[38;5;22m",  // Forest
			"\033[38;5;161m", // Crimson
		},
	}

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// RingColor returns the palette entry for a ring, or "" when the theme has
// no palette.
func (t Theme) RingColor(ring uint64) string {
	if len(t.Rings) == 0 {
		return ""
	}
	return t.Rings[ring%uint64(len(t.Rings))]
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used by tests to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name: "dark", "light" or "none".
// Unknown names select the dark theme.
func SetTheme(name string) {
	switch name {
	case "light":
		SetCurrentTheme(LightTheme)
	case "none":
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(DarkTheme)
	}
}

// InitTheme selects the theme for a run. Colors are disabled when noColor
// is true, when NO_COLOR is set (https://no-color.org/), or when out is not
// a terminal.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
//   - out: The writer the rendered output goes to.
func InitTheme(noColor bool, out io.Writer) {
	if noColor || !IsTerminal(out) {
		SetCurrentTheme(NoColorTheme)
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
