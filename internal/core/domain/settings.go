package domain

// ColorMode controls whether diagnostics are written with ANSI colour.
type ColorMode string

// Available colour modes.
const (
	// ColorAuto colours only when the diagnostic stream is a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways colours regardless of the stream.
	ColorAlways ColorMode = "always"

	// ColorNever writes plain text.
	ColorNever ColorMode = "never"
)

// IsValid returns true if the colour mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ColorMode) String() string {
	return string(m)
}

// ParseColorMode converts a string to a ColorMode.
// Returns ColorAuto and false for unrecognised values.
func ParseColorMode(s string) (ColorMode, bool) {
	m := ColorMode(s)
	if !m.IsValid() {
		return ColorAuto, false
	}
	return m, true
}

// Settings holds the diagnostic preferences read from the settings file.
type Settings struct {
	// Color is the diagnostic colour mode.
	Color ColorMode

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultSettings returns settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		Color:   ColorAuto,
		Verbose: false,
	}
}
