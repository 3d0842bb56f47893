package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/muesli/termenv"

	"github.com/databoard/databoard/pkg/defaults"
)

// Global UI state
var (
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetNoColor disables colored output (for pipes and CI logs).
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
}

// colorEnabled reports whether styles should be applied: explicit opt-out
// and dumb terminals both disable color.
func colorEnabled() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	if noColorMode {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// Title renders s in the title style when color is enabled.
func Title(s string) string {
	if !colorEnabled() {
		return s
	}
	return TitleStyle.Render(s)
}

// Errorf prints a styled error line to stderr.
func Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if colorEnabled() {
		msg = ErrorStyle.Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}

// Mutedf prints a styled secondary line to stderr.
func Mutedf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if colorEnabled() {
		msg = MutedStyle.Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}

// Banner returns the one-line startup banner.
func Banner() string {
	banner := fmt.Sprintf("%s v%s — open data tables over MCP", defaults.ToolNameDisplay, defaults.Version)
	if !colorEnabled() {
		return banner
	}
	return SubtitleStyle.Render(banner)
}
