// Package slidenav wires a hash-based navigator to lazily loaded views, with
// optional slide transitions and swipe-back support.
//
// The coordinator built by Create subscribes to the navigator's events and,
// for each of them, loads the views involved and either renders, shows,
// hides or hands them to a ViewSlider:
//
//   - view: render a view entered fresh, show one re-entered from history
//   - immediate: preload every remembered view and rebuild swipe-back bindings
//   - to: bind swipe-back from the entered view to the one just left
//   - forward / back: play the slider transition, or hide and show directly
//
// A swipe-back moves the navigator back silently, since the slider already
// switched the views.
package slidenav

import (
	"log/slog"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before any navigator is created to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetConsoleLogging controls whether log lines are also written to stdout.
// Terminal UIs turn it off. Call before any navigator is created.
func SetConsoleLogging(enabled bool) {
	internal.SetConsoleLogging(enabled)
}

// GetLogger returns the slidenav logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level of the slidenav logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}
