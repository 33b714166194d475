// Package config loads configuration from environment variables and optional
// .env files.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: Load
// parses the environment into any struct annotated with `env` tags and caches
// the result per type, so later calls are served from memory. LoadEnv reads
// extra .env files before parsing; ResetCache clears the cache in tests.
//
// App holds the settings used by cmd/licensectl:
//
//	var app config.App
//	if err := config.Load(&app); err != nil {
//	    log.Fatal(err)
//	}
//	if err := app.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Errors are sentinel values compared with errors.Is: ErrParsingConfig,
// ErrConfigNotLoaded, ErrNilPointer, ErrLoadingEnvFile and ErrInvalidConfig.
package config
