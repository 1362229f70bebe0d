package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

var (
	loaded = &cache{values: make(map[reflect.Type]any)}

	defaultEnvOnce sync.Once
)

// Load populates v from the process environment.
//
// With no files, the .env file in the working directory is read once per
// process if it exists. Named files must exist; values already present in the
// environment win over file values.
//
// Each config type is parsed once; later calls for the same type are served
// from cache until Reset is called.
//
//	type Config struct {
//		LogLevel string `env:"TEXTCANON_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return errors.Join(ErrEnvFile, err)
		}
	} else {
		defaultEnvOnce.Do(func() {
			// missing .env is fine
			_ = godotenv.Load()
		})
	}

	key := reflect.TypeFor[T]()

	loaded.mu.RLock()
	cached, ok := loaded.values[key]
	loaded.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	loaded.mu.Lock()
	if existing, ok := loaded.values[key]; ok {
		parsed = existing.(T)
	} else {
		loaded.values[key] = parsed
	}
	loaded.mu.Unlock()

	*v = parsed
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
}

// Reset drops every cached config so the next Load re-reads the environment.
func Reset() {
	loaded.mu.Lock()
	loaded.values = make(map[reflect.Type]any)
	loaded.mu.Unlock()
}
