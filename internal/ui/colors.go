package ui

// Color accessor functions return the escape code for the given role
// in the currently active theme. They are the only way other packages
// should obtain color codes, so theme switches take effect everywhere.

// ColorReset returns the code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorPrimary returns the main accent color.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the muted secondary color.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the informational color.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBold returns the bold modifier.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline modifier.
func ColorUnderline() string { return GetCurrentTheme().Underline }
