package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/environment"
	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// Config is read from FIELDCHECK_* environment variables and an optional .env file.
type Config struct {
	Lang            string `env:"FIELDCHECK_LANG" envDefault:"en"`
	TranslationsDir string `env:"FIELDCHECK_TRANSLATIONS_DIR"`
	LogLevel        string `env:"FIELDCHECK_LOG_LEVEL" envDefault:"warn"`
	LogFormat       string `env:"FIELDCHECK_LOG_FORMAT" envDefault:"text"`
	Env             string `env:"FIELDCHECK_ENV" envDefault:"development"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

type runIDKey struct{}

// newLogger builds the logger for one command run. Records carry the
// environment and the run id found in the command context.
func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithEnvironment(cfg.Env, "fieldcheck"),
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithOutput(w),
		logger.WithContextExtractors(environment.LoggerExtractor()),
		logger.WithContextValue("run_id", runIDKey{}),
	), nil
}

// loadMessages returns the message table for lang. Without a translations
// path the bundled locales are used. A path may point to a directory of
// YAML files or to a single YAML or JSON file.
func loadMessages(ctx context.Context, path, lang string, log *slog.Logger) (*i18n.Messages, error) {
	if path == "" {
		t, err := i18n.DefaultTranslator()
		if err != nil {
			return nil, err
		}
		return i18n.NewMessages(t, lang), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("translations: %w", err)
	}

	var adapter i18n.TranslationAdapter
	if info.IsDir() {
		adapter = i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), path).WithLogger(log)
	} else {
		parser := i18n.NewParserForFile(path)
		if parser == nil {
			return nil, fmt.Errorf("translations: unsupported file %q", path)
		}
		adapter = i18n.NewFileAdapter(parser, path)
	}

	t, err := i18n.NewTranslator(ctx, adapter,
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return nil, fmt.Errorf("translations: %w", err)
	}
	return i18n.NewMessages(t, lang), nil
}
