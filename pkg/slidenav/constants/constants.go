// Package constants defines shared constants and environment configuration
// used throughout slidenav.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	LogLevelEnvVar = "SLIDENAV_LOG_LEVEL" // Overrides the configured log level
	LogPathEnvVar  = "SLIDENAV_LOG_PATH"  // Full path of the log file
	StateDirEnvVar = "SLIDENAV_STATE_DIR" // Directory for persisted navigator state
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Defaults applied when options or config files leave a value unset.
const (
	DefaultContainer     = "body"
	DefaultLanguage      = "en"
	DefaultMaxRecords    = 64
	DefaultFetchTimeout  = 30 * time.Second
	DefaultStateFileMode = 0644
)
