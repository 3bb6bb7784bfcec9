package internal

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localizersMu sync.Mutex
	localizers   = map[string]*i18n.Localizer{}
)

func messageBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, err := fs.Glob(localeFS, "locales/*.toml")
		if err != nil {
			GetLogger().Error("Failed to list message catalogs", "error", err)
			return
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
				GetLogger().Error("Failed to load message catalog", "file", file, "error", err)
			}
		}
	})
	return bundle
}

// Localize renders the message with the given ID in lang, falling back to
// English and finally to the ID itself.
func Localize(lang, messageID string) string {
	localizersMu.Lock()
	loc, ok := localizers[lang]
	if !ok {
		loc = i18n.NewLocalizer(messageBundle(), lang, language.English.String())
		localizers[lang] = loc
	}
	localizersMu.Unlock()

	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// SupportedLanguages returns the tags of every embedded catalog.
func SupportedLanguages() []language.Tag {
	return messageBundle().LanguageTags()
}
