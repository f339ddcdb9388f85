package i18n

import "errors"

var (
	ErrNilAdapter          = errors.New("translation adapter is nil")
	ErrLoadingCancelled    = errors.New("loading translations cancelled")
	ErrNoTranslationFiles  = errors.New("no translation files found")
	ErrInvalidTranslations = errors.New("invalid translations")
	ErrFailedToMarshalJSON = errors.New("failed to marshal translations to JSON")

	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrFailedToReadFile              = errors.New("failed to read translation file")
	ErrFailedToParseFile             = errors.New("failed to parse translation file")
	ErrFailedToAccessDirectory       = errors.New("failed to access translations directory")
	ErrFailedToReadDirectory         = errors.New("failed to read translations directory")
	ErrFailedToReadEmbeddedDirectory = errors.New("failed to read embedded translations directory")
)
