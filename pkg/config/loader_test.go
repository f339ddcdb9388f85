package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
)

type defaultsConfig struct {
	Lang     string `env:"TEST_FC_LANG" envDefault:"en"`
	Strict   bool   `env:"TEST_FC_STRICT" envDefault:"true"`
	MaxDepth int    `env:"TEST_FC_MAX_DEPTH" envDefault:"8"`
}

type cachedConfig struct {
	Value string `env:"TEST_FC_CACHED" envDefault:"default"`
}

type requiredConfig struct {
	Rules string `env:"TEST_FC_RULES,required"`
}

type envFileConfig struct {
	Format string `env:"TEST_FC_FORMAT"`
	Lang   string `env:"TEST_FC_FILE_LANG"`
}

type prefixedConfig struct {
	Lang  string   `env:"LANG" envDefault:"en"`
	Langs []string `env:"LANGS" envSeparator:","`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config.ResetCache()

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "en", cfg.Lang)
		assert.True(t, cfg.Strict)
		assert.Equal(t, 8, cfg.MaxDepth)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_FC_CACHED", "first")

		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		require.NoError(t, os.Setenv("TEST_FC_CACHED", "second"))
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)

		config.ResetCache()
		var third cachedConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "second", third.Value)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.ResetCache()

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)

		t.Setenv("TEST_FC_RULES", "rules.yaml")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "rules.yaml", cfg.Rules)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}

func TestParse(t *testing.T) {
	t.Run("custom environment with prefix", func(t *testing.T) {
		var cfg prefixedConfig
		err := config.Parse(&cfg, env.Options{
			Prefix:      "FIELDCHECK_",
			Environment: map[string]string{"FIELDCHECK_LANG": "es", "FIELDCHECK_LANGS": "en,es"},
		})
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Lang)
		assert.Equal(t, []string{"en", "es"}, cfg.Langs)
	})

	t.Run("does not cache", func(t *testing.T) {
		var cfg prefixedConfig
		require.NoError(t, config.Parse(&cfg, env.Options{Environment: map[string]string{"LANG": "de"}}))
		assert.Equal(t, "de", cfg.Lang)

		require.NoError(t, config.Parse(&cfg, env.Options{Environment: map[string]string{}}))
		assert.Equal(t, "en", cfg.Lang)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *prefixedConfig
		assert.ErrorIs(t, config.Parse(cfg), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, ".env.first")
	second := filepath.Join(dir, ".env.second")
	require.NoError(t, os.WriteFile(first, []byte("TEST_FC_FORMAT=json\nTEST_FC_FILE_LANG=\"es\"\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("TEST_FC_FORMAT=text\n"), 0o600))

	t.Cleanup(func() {
		_ = os.Unsetenv("TEST_FC_FORMAT")
		_ = os.Unsetenv("TEST_FC_FILE_LANG")
	})

	require.NoError(t, config.LoadEnv(first, second))

	var cfg envFileConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "es", cfg.Lang)

	err := config.LoadEnv(filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
