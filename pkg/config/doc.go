// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Every config struct type
// is parsed once and cached for the life of the process.
//
// # Usage
//
//	type Config struct {
//	    Env       string `env:"TEXTCANON_ENV" envDefault:"development"`
//	    LogLevel  string `env:"TEXTCANON_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"TEXTCANON_LOG_FORMAT"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Pass file names to Load to read specific .env files instead of the default
// one. Files never override variables that are already set.
//
// # Errors
//
//   - ErrNilPointer – nil pointer passed to Load.
//   - ErrEnvFile – a named .env file could not be read.
//   - ErrParsingConfig – env.Parse failed, e.g. a required variable is unset.
//
// Tests call Reset between cases that change the environment.
package config
