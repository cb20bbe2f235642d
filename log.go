package dnd

import (
	"log/slog"
	"os"
)

// newDefaultLogger returns a text logger on stderr whose level is controlled
// by lv. Every record carries component=dnd.
func newDefaultLogger(lv *slog.LevelVar) *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv})
	return slog.New(h).With("component", "dnd")
}

// discardLogger drops every record. Used when a State is built without an
// engine and no logger was supplied.
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetDebugMode enables or disables debug logging. When enabled, every state
// transition, handler run and reorder decision is logged at debug level.
// Only affects the default logger; a logger passed via WithLogger keeps its
// own level.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	if enabled {
		e.level.Set(slog.LevelDebug)
	} else {
		e.level.Set(slog.LevelWarn)
	}
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *slog.Logger {
	return e.log
}

// DebugMode reports whether debug logging is enabled.
func (e *Engine) DebugMode() bool {
	return e.debug
}
