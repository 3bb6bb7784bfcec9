package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/constants"
)

var (
	logFile        *os.File
	logPath        string
	consoleLogging = true

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetConsoleLogging controls whether log lines are also written to stdout.
// Has no effect once the logger exists.
func SetConsoleLogging(enabled bool) {
	consoleLogging = enabled
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Has no effect once the logger exists.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		var console io.Writer = io.Discard
		if consoleLogging {
			console = os.Stdout
		}

		targetPath := logPath
		if targetPath == "" {
			targetPath = os.Getenv(constants.LogPathEnvVar)
		}
		if targetPath == "" {
			multiWriter = console
			return
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			multiWriter = console
			return
		}

		var err error
		logFile, err = os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			multiWriter = console
			return
		}

		multiWriter = io.MultiWriter(console, logFile)
	})
}

// GetLogger returns the shared slidenav logger, creating it on first use.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		levelVar.Set(ParseLevel(os.Getenv(constants.LogLevelEnvVar)))

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler).With("component", "slidenav")
	})
	return logger
}

// LoggerOr returns l when set and the shared logger otherwise.
func LoggerOr(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return GetLogger()
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetRawLogLevel(rawLevel string) {
	GetLogger()
	levelVar.Set(ParseLevel(rawLevel))
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
