// Package logger provides diagnostic output for the minigrep CLI.
//
// Notices and errors are always written to stderr; they are the messages
// a user needs to see, such as which case mode is in effect. Debug, Info,
// Warn and Section output only appears when verbose mode is enabled via
// the --verbose flag and traces the search pipeline.
//
// Diagnostics are coloured only when the colour mode allows it: ColorAuto
// colours when the output writer is a terminal, ColorAlways forces ANSI
// colour, ColorNever writes plain text.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// ANSI palette indices for diagnostics.
const (
	noticeColor = lipgloss.Color("11")
	errorColor  = lipgloss.Color("9")
)

var (
	mu        sync.Mutex
	verbose   bool
	output    io.Writer = os.Stderr
	colorMode           = domain.ColorAuto
	pal                 = newPalette(os.Stderr, domain.ColorAuto)
)

// palette holds the styles for the current output and colour mode.
type palette struct {
	enabled bool
	notice  lipgloss.Style
	err     lipgloss.Style
}

func newPalette(w io.Writer, mode domain.ColorMode) palette {
	enabled := mode == domain.ColorAlways || (mode == domain.ColorAuto && isTerminal(w))

	r := lipgloss.NewRenderer(w)
	if enabled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return palette{
		enabled: enabled,
		notice:  r.NewStyle().Foreground(noticeColor).TabWidth(lipgloss.NoTabConversion),
		err:     r.NewStyle().Foreground(errorColor).TabWidth(lipgloss.NoTabConversion),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput sets the output writer for all diagnostics.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	pal = newPalette(output, colorMode)
}

// SetColorMode sets how notices and errors are coloured.
func SetColorMode(mode domain.ColorMode) {
	mu.Lock()
	defer mu.Unlock()
	colorMode = mode
	pal = newPalette(output, colorMode)
}

// ColorEnabled reports whether diagnostics are currently written with colour.
func ColorEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return pal.enabled
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
	}
}

// Notice prints a user-facing diagnostic regardless of verbose mode.
func Notice(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	writeStyled(pal.notice, fmt.Sprintf(format, args...))
}

// Error prints an error diagnostic regardless of verbose mode.
func Error(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	writeStyled(pal.err, fmt.Sprintf(format, args...))
}

// writeStyled writes msg on its own line (caller must hold lock).
func writeStyled(style lipgloss.Style, msg string) {
	if pal.enabled {
		msg = style.Render(msg)
	}
	fmt.Fprintln(output, msg)
}
