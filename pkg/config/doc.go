// Package config loads configuration from environment variables into
// tagged structs.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing:
//
//   - LoadEnv loads one or more .env files into the process environment.
//   - Load parses the environment into a struct once per type and caches it.
//   - Parse does the same without the cache and accepts env.Options, which
//     lets callers supply their own environment map.
//   - MustLoad panics on failure.
//   - ResetCache clears the cache, mostly for tests.
//
// # Usage
//
//	type Config struct {
//	    Lang     string `env:"FIELDCHECK_LANG" envDefault:"en"`
//	    LogLevel string `env:"FIELDCHECK_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be checked with errors.Is.
package config
