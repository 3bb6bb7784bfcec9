package slidenav

import (
	"fmt"
	"os"
	"strings"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/constants"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/internal"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/navigator"
	"github.com/BurntSushi/toml"
)

// Config is the file form of Options. Collaborators (slider, module,
// loader) are attached in code after Options is called.
type Config struct {
	ID         string `toml:"id"`
	Container  string `toml:"container"`
	Preload    bool   `toml:"preload"`
	Slide      bool   `toml:"slide"`
	Animate    bool   `toml:"animate"`
	Language   string `toml:"language"`
	LogLevel   string `toml:"log_level"`
	LogPath    string `toml:"log_path"`
	StateDir   string `toml:"state_dir"`
	MaxRecords int    `toml:"max_records"`

	path    string
	unknown []string
}

// DefaultConfig mirrors DefaultOptions.
func DefaultConfig() Config {
	return Config{
		Container:  constants.DefaultContainer,
		Preload:    true,
		Slide:      true,
		Animate:    true,
		Language:   constants.DefaultLanguage,
		LogLevel:   "info",
		MaxRecords: constants.DefaultMaxRecords,
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Keys missing from the
// file keep their defaults; SLIDENAV_STATE_DIR and SLIDENAV_LOG_LEVEL
// override the file. Unknown keys are reported by ApplyLogging.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("slidenav: load config %s: %w", path, err)
	}
	cfg.path = path
	for _, k := range md.Undecoded() {
		cfg.unknown = append(cfg.unknown, k.String())
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(constants.StateDirEnvVar); v != "" {
		c.StateDir = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
}

// ApplyLogging configures the slidenav logger from the config.
func (c Config) ApplyLogging() {
	if c.LogPath != "" {
		internal.SetLogPath(c.LogPath)
	}
	internal.SetRawLogLevel(c.LogLevel)

	if len(c.unknown) > 0 {
		internal.GetLogger().Warn("Ignoring unknown config keys",
			"path", c.path, "keys", strings.Join(c.unknown, ","))
	}
}

// UnknownKeys returns the keys of the config file that matched no field.
func (c Config) UnknownKeys() []string {
	return c.unknown
}

// Options converts the config. A StateDir selects a navigator.FileStore.
func (c Config) Options() Options {
	opts := Options{
		ID:         c.ID,
		Container:  c.Container,
		Preload:    c.Preload,
		Slide:      c.Slide,
		Animate:    c.Animate,
		Language:   c.Language,
		MaxRecords: c.MaxRecords,
	}
	if c.StateDir != "" {
		opts.Store = navigator.NewFileStore(c.StateDir)
	}
	return opts
}
