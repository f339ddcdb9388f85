// Package i18n resolves the message keys used by validation findings.
//
// A Translator loads translations once through a TranslationAdapter and looks
// up dot-separated keys in nested maps. Adapters exist for in-memory maps,
// single files, directories and any fs.FS; YAMLParser and JSONParser decode
// documents whose top level is keyed by language:
//
//	en:
//	  errors:
//	    validation:
//	      default: Invalid value
//
// Messages binds a Translator to one language, matched with BCP 47 rules so
// "es-VE" resolves to "es". It is the lookup the validation runner uses for
// default messages and "#key" references. English and Spanish tables are
// embedded and served by DefaultTranslator and DefaultMessages.
//
// # Usage
//
//	adapter := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), "./translations")
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//
//	msgs := i18n.NewMessages(translator, "es-VE")
//	msgs.Get("errors.validation.default") // "Valor inválido"
//
// Templates may carry %{name} placeholders filled from key-value pairs:
//
//	translator.T("en", "welcome", "name", "John")
package i18n
