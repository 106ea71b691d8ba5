// Package logging builds the slog handler used for diagnostics on stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// NewTerminalHandler returns a tint handler writing to w at the given level.
// Colours are enabled only when w is a terminal.
func NewTerminalHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !IsTerminal(w),
	})
}

// NewLogger is a shorthand for slog.New(NewTerminalHandler(w, level)).
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewTerminalHandler(w, level))
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseLevel converts debug, info, warn or error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: use debug, info, warn or error", s)
	}
	return level, nil
}
