package config

import "github.com/ghettovoice/uriparse/uri"

// Default values for configuration fields.
const (
	DefaultQueryMode = uri.ModeDuplicateLast
	DefaultLogFormat = "console"
	DefaultLogLevel  = "info"
)

// Default returns a configuration with all defaults applied.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// ApplyDefaults fills empty fields with default values.
// The query mode zero value is already the default.
func ApplyDefaults(cfg *Config) {
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
