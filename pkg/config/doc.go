// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: .env
// files are merged into the process environment, then `env` struct tags
// drive parsing. Each configuration type is parsed once and cached by its
// fully-qualified type name.
//
// # Usage
//
//	var cfg extension.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors for errors.Is:
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct
//   - ErrLoadingEnvFile – a .env file could not be read
//   - ErrNilPointer     – nil pointer passed to Load, MustLoad or ForceReload
//
// # Testing Helpers
//
// ResetCache clears the cache; ForceReload re-parses a single type after the
// environment changed.
package config
