// Package i18n renders response messages in the caller's language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Translator resolves message ids against the embedded catalogs.
type Translator struct {
	bundle      *i18n.Bundle
	defaultLang language.Tag
}

func NewTranslator(defaultLang string) (*Translator, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		tag = language.English
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	return &Translator{bundle: bundle, defaultLang: tag}, nil
}

// Localize renders id for the languages in accept (an Accept-Language value).
// fallback is returned when no catalog knows the id.
func (t *Translator) Localize(accept, id, fallback string, data map[string]any) string {
	if id == "" {
		return fallback
	}

	localizer := i18n.NewLocalizer(t.bundle, accept, t.defaultLang.String())
	cfg := &i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	}
	if fallback != "" {
		cfg.DefaultMessage = &i18n.Message{ID: id, Other: escape(fallback)}
	}

	msg, _ := localizer.Localize(cfg)
	if msg == "" {
		return fallback
	}
	return msg
}

// escape keeps already rendered fallbacks from being parsed as templates.
func escape(s string) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	return strings.ReplaceAll(s, "{{", `{{"{{"}}`)
}
