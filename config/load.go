package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/uriparse/uri"
)

// Environment variables overriding file values.
const (
	EnvQueryMode     = "URIPARSE_QUERY_MODE"
	EnvDefaultScheme = "URIPARSE_DEFAULT_SCHEME"
	EnvLogFormat     = "URIPARSE_LOG_FORMAT"
	EnvLogLevel      = "URIPARSE_LOG_LEVEL"
)

// Load reads the YAML file at path, applies defaults and environment overrides
// and validates the result. An empty path loads defaults and environment overrides only.
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg = Default()
	} else {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, errtrace.Wrap(fmt.Errorf("read config file %q: %w", path, rerr))
		}
		cfg, err = parse(data)
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("parse config file %q: %w", path, err))
		}
	}

	if err = ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err = Validate(cfg); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return cfg, nil
}

// Parse decodes YAML data, applies defaults and validates the result.
// Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	cfg, err := parse(data)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := Validate(cfg); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errtrace.Wrap(err)
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

// ApplyEnv overrides configuration values from the environment.
// lookup is usually [os.LookupEnv].
func ApplyEnv(cfg *Config, lookup func(key string) (string, bool)) error {
	if v, ok := lookup(EnvQueryMode); ok {
		m, err := uri.ParseQueryMode(v)
		if err != nil {
			return errtrace.Wrap(newFieldError(EnvQueryMode, err))
		}
		cfg.QueryMode = m
	}
	if v, ok := lookup(EnvDefaultScheme); ok {
		cfg.DefaultScheme = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.Log.Format = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	return nil
}
