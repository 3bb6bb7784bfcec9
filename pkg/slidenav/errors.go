package slidenav

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/constants"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/internal"
)

// Sentinel errors for invalid options. All of them are wrapped in a
// ConfigError and abort Create.
var (
	// ErrAnimateRequiresSlider indicates Animate is enabled without a ViewSlider.
	ErrAnimateRequiresSlider = errors.New("animate requires a view slider")

	// ErrSlideRequiresSlider indicates Slide is enabled without a ViewSlider.
	ErrSlideRequiresSlider = errors.New("slide requires a view slider")

	// ErrModuleRequired indicates no view registry was supplied.
	ErrModuleRequired = errors.New("module is required")

	// ErrLoaderRequired indicates no loader was supplied and none could be
	// derived from the module.
	ErrLoaderRequired = errors.New("loader is required")
)

var messageIDs = map[error]string{
	ErrAnimateRequiresSlider: "AnimateRequiresSlider",
	ErrSlideRequiresSlider:   "SlideRequiresSlider",
	ErrModuleRequired:        "ModuleRequired",
	ErrLoaderRequired:        "LoaderRequired",
}

// ConfigError reports options that cannot produce a working navigator.
// These errors are fatal: fix the options, do not retry.
type ConfigError struct {
	Field    string // Option at fault (e.g., "Animate", "Module")
	Err      error  // One of the sentinel errors above
	Language string // Locale used for Message; empty means English
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("slidenav: invalid %s option: %s", e.Field, e.Message())
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Message returns the localized description of the error.
func (e *ConfigError) Message() string {
	id, ok := messageIDs[e.Err]
	if !ok {
		if e.Err == nil {
			return "unknown"
		}
		return e.Err.Error()
	}
	lang := e.Language
	if lang == "" {
		lang = constants.DefaultLanguage
	}
	return internal.Localize(lang, id)
}

func newConfigError(field string, err error, lang string) *ConfigError {
	return &ConfigError{Field: field, Err: err, Language: lang}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// LocalizeError returns the message of a ConfigError in lang, or err.Error()
// for any other error.
func LocalizeError(err error, lang string) string {
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		return err.Error()
	}
	localized := *cfgErr
	localized.Language = lang
	return localized.Message()
}
