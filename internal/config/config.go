// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// APIKey guards mutating routes via the X-API-Key header.
	// Empty disables the check.
	APIKey string `koanf:"api_key"`

	// ForecastCount is the forecast length when the caller passes none.
	ForecastCount int `koanf:"forecast_count"`

	// MaxForecast caps GET /rotation/upcoming?count.
	MaxForecast int `koanf:"max_forecast"`

	// MaxHistory bounds how many superseded roster records are retained.
	MaxHistory int `koanf:"max_history"`

	// People and Anchor optionally seed the roster at startup so the
	// service answers queries before the first PUT /roster.
	People []string `koanf:"people"`
	Anchor string   `koanf:"anchor"`
}

// New creates a Config with defaults. Loading from file/env happens in
// Load.
func New() *Config {
	c := &Config{
		LogLevel:      "info",
		Addr:          ":9080",
		APIKey:        "",
		ForecastCount: 5,
		MaxForecast:   50,
		MaxHistory:    100,
	}
	return c
}
