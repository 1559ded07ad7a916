// Package logx provides the level-colored connection log used by the
// server and proxy drivers, grounded on fatih/color the way
// kryptco-kr/color.go wraps it (one SprintFunc-backed helper per color) and
// on log/slog for the structured side of logging.
package logx

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
)

var (
	info  = color.New(color.FgHiCyan).SprintFunc()
	warn  = color.New(color.FgHiYellow).SprintFunc()
	errc  = color.New(color.FgHiRed).SprintFunc()
	debug = color.New(color.FgHiMagenta).SprintFunc()
)

// New builds the logger every server/proxy driver logs through. Level
// defaults to Info; set MCWIRE_LOG_LEVEL=debug for verbose connection
// tracing.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("MCWIRE_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// Colorize renders s in the color conventionally associated with level, for
// ad hoc human-facing lines (accept/close banners) printed outside slog's
// structured fields.
func Colorize(level slog.Level, s string) string {
	switch {
	case level >= slog.LevelError:
		return errc(s)
	case level >= slog.LevelWarn:
		return warn(s)
	case level < slog.LevelInfo:
		return debug(s)
	default:
		return info(s)
	}
}
