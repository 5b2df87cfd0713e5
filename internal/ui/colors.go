package ui

// Color functions return ANSI escape codes from the current theme.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed returns the error color from the current theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color from the current theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color from the current theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary color from the current theme.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorDim returns the secondary color from the current theme.
func ColorDim() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ThemeColors exposes the current theme to packages that only need a few
// colors, such as apperrors.ColorProvider.
type ThemeColors struct{}

// Yellow returns the warning color.
func (ThemeColors) Yellow() string { return ColorYellow() }

// Reset returns the reset escape code.
func (ThemeColors) Reset() string { return ColorReset() }
