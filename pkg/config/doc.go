// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files. Each configuration type is parsed
// once and cached for the lifetime of the process; ResetCache clears the
// cache, which tests use after changing the environment.
//
//	type Config struct {
//	    AppName string `env:"APP_NAME" envDefault:"formlab"`
//	    HTTP    httpserver.Config
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig, ErrInvalidConfigType, ErrNilPointer or
// ErrLoadingEnvFile and can be matched with errors.Is.
package config
