package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "en"

// ErrLanguageNotSupported reports a language with no loaded translations.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}

// Translator resolves dot-separated keys ("errors.validation.default")
// against translations loaded once from an adapter. It is read-only after
// construction and safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	languages     []string
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        discardLogger(),
	}
	for _, opt := range options {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, keys := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if keys == nil {
			return nil, fmt.Errorf("%w: no keys for language %q", ErrInvalidTranslations, lang)
		}
		t.languages = append(t.languages, lang)
	}
	slices.Sort(t.languages)
	t.translations = translations

	if len(t.languages) == 0 {
		t.logger.WarnContext(ctx, "no translations loaded")
	} else {
		t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.languages))
	}
	return t, nil
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.languages)
}

// DefaultLanguage returns the language configured with WithDefaultLanguage.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether lang itself defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := walk(t.translations[lang], key)
	return ok
}

// T translates key into lang, substituting key-value args into %{name}
// placeholders: T("en", "welcome", "name", "John").
//
// A key missing from lang is looked up in the default language. When it is
// still missing, or is not a string, the key itself is returned, or an empty
// string with WithFallbackToKey(false).
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.text(lang, key); ok {
		return substitute(s, args)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td is T with an explicit fallback instead of the key.
func (t *Translator) Td(lang, key, fallback string, args ...string) string {
	if s, ok := t.text(lang, key); ok {
		return substitute(s, args)
	}
	return substitute(fallback, args)
}

// ExportJSON returns the key tree of lang as JSON.
func (t *Translator) ExportJSON(lang string) (string, error) {
	keys, ok := t.translations[lang]
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}
	out, err := json.Marshal(keys)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(out), nil
}

func (t *Translator) text(lang, key string) (string, bool) {
	val, ok := t.lookup(lang, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	if t.logMissing {
		t.logger.Warn("translation is not a string",
			slog.String("lang", lang), slog.String("key", key), slog.String("type", fmt.Sprintf("%T", val)))
	}
	return "", false
}

func (t *Translator) lookup(lang, key string) (any, bool) {
	keys, known := t.translations[lang]
	if val, ok := walk(keys, key); ok {
		return val, true
	}
	if t.logMissing {
		msg := "translation not found"
		if !known {
			msg = "language not supported"
		}
		t.logger.Warn(msg, slog.String("lang", lang), slog.String("key", key))
	}
	if lang == t.defaultLang {
		return nil, false
	}
	return walk(t.translations[t.defaultLang], key)
}

// walk follows the dot-separated segments of key through nested maps.
func walk(tree map[string]any, key string) (any, bool) {
	if tree == nil {
		return nil, false
	}
	var node any = tree
	for part := range strings.SplitSeq(key, ".") {
		switch m := node.(type) {
		case map[string]any:
			v, ok := m[part]
			if !ok {
				return nil, false
			}
			node = v
		case map[any]any:
			v, ok := m[part]
			if !ok {
				return nil, false
			}
			node = v
		default:
			return nil, false
		}
	}
	return node, true
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders from key-value pairs. Unknown
// placeholders are kept and a trailing odd argument is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
