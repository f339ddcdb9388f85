package i18n

import (
	"context"
	"embed"
	"sync"

	"golang.org/x/text/language"
)

// DefaultMessageKey is the key looked up when a failed validation carries no message.
const DefaultMessageKey = "errors.validation.default"

//go:embed locales/*.yaml
var locales embed.FS

// Messages binds a Translator to a single language and resolves message keys.
// It is the lookup the validation runner uses for default and "#key" messages.
type Messages struct {
	translator *Translator
	lang       string
}

// NewMessages binds translator to lang. The language is matched against the
// translator's supported languages ("es-VE" resolves to "es"); unmatched
// languages fall back to the translator's default language.
func NewMessages(translator *Translator, lang string) *Messages {
	return &Messages{
		translator: translator,
		lang:       MatchLanguage(lang, translator.SupportedLanguages(), translator.DefaultLanguage()),
	}
}

// Get returns the translation for key.
func (m *Messages) Get(key string) string {
	return m.translator.T(m.lang, key)
}

// Format returns the translation for key with key-value arguments substituted
// into %{name} placeholders.
func (m *Messages) Format(key string, args ...string) string {
	return m.translator.T(m.lang, key, args...)
}

// Export returns the key tree of the resolved language as JSON.
func (m *Messages) Export() (string, error) {
	return m.translator.ExportJSON(m.lang)
}

// Lang returns the resolved language.
func (m *Messages) Lang() string {
	return m.lang
}

// MatchLanguage picks the best supported language for a requested tag or
// Accept-Language style list using BCP 47 matching.
func MatchLanguage(requested string, supported []string, fallback string) string {
	if requested == "" || len(supported) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = language.Make(s)
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return supported[idx]
}

var defaultTranslator = sync.OnceValues(func() (*Translator, error) {
	return NewTranslator(context.Background(),
		NewEmbeddedFsAdapter(NewYAMLParser(), locales, "locales"),
		WithDefaultLanguage(DefaultLanguage),
	)
})

// DefaultTranslator returns the translator for the bundled locales.
func DefaultTranslator() (*Translator, error) {
	return defaultTranslator()
}

// DefaultMessages returns English messages from the bundled locales.
// It panics if the bundled locales cannot be parsed, which only happens on a
// broken build.
func DefaultMessages() *Messages {
	t, err := defaultTranslator()
	if err != nil {
		panic(err)
	}
	return NewMessages(t, DefaultLanguage)
}
