package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/rota/internal/domain/rotation"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ROTA_CONFIG is set
//  3. env (prefix ROTA_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("ROTA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ROTA_ADDR, ROTA_API_KEY, ...
	// Keys map like ROTA_MAX_FORECAST -> max_forecast; underscores are
	// preserved to match the koanf tags on the struct. ROTA_PEOPLE takes a
	// comma-separated list.
	envProvider := env.ProviderWithValue("ROTA_", ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, "ROTA_"))
		if key == "people" {
			return key, strings.Split(value, ",")
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate applies basic sanity checks after layering.
func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.ForecastCount < 0 {
		return fmt.Errorf("%w: forecast_count must not be negative", ErrInvalidConfig)
	}
	if c.MaxForecast < c.ForecastCount {
		return fmt.Errorf("%w: max_forecast must not be below forecast_count", ErrInvalidConfig)
	}
	if c.Anchor != "" {
		if _, err := rotation.ParseDate(c.Anchor); err != nil {
			return fmt.Errorf("%w: anchor: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
