package config

//go:generate go tool errtrace -w .

import (
	"io"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparse/internal/log"
	"github.com/ghettovoice/uriparse/uri"
)

// Config is the root configuration.
type Config struct {
	// QueryMode is the duplicate handling mode, e.g. "array|semicolon".
	QueryMode uri.QueryMode `yaml:"query_mode" json:"query_mode"`
	// DefaultScheme is used for inputs without a registered scheme token.
	// Empty means no default.
	DefaultScheme string `yaml:"default_scheme" json:"default_scheme"`
	// Schemes extends the built-in scheme registry.
	Schemes []SchemeConfig `yaml:"schemes" json:"schemes"`
	Log     LogConfig      `yaml:"log" json:"log"`
}

// SchemeConfig registers an additional scheme.
type SchemeConfig struct {
	Name string `yaml:"name" json:"name"`
	// DefaultPort is the well-known port, zero means none.
	DefaultPort uint16 `yaml:"default_port" json:"default_port"`
}

func (c SchemeConfig) scheme() uri.Scheme {
	if c.DefaultPort == 0 {
		return uri.NewScheme(c.Name)
	}
	return uri.NewSchemePort(c.Name, c.DefaultPort)
}

// LogConfig configures the logger.
type LogConfig struct {
	// Format is one of "console", "dev" or "none".
	Format string `yaml:"format" json:"format"`
	// Level is a slog level name: "debug", "info", "warn" or "error".
	Level string `yaml:"level" json:"level"`
}

// Registry returns the built-in scheme registry extended with the configured schemes.
func (c *Config) Registry() *uri.Registry {
	r := uri.DefaultRegistry()
	for _, sc := range c.Schemes {
		s := sc.scheme()
		r = r.With(sc.Name, func() uri.Scheme { return s })
	}
	return r
}

// NewParser builds a parser with the configured mode and schemes
// and resolves the default scheme, nil if none is configured.
func (c *Config) NewParser() (*uri.Parser, uri.Scheme, error) {
	reg := c.Registry()
	p, err := uri.NewParser(uri.WithMode(c.QueryMode), uri.WithRegistry(reg))
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	if c.DefaultScheme == "" {
		return p, nil, nil
	}
	def, ok := reg.Lookup(c.DefaultScheme)
	if !ok {
		return nil, nil, errtrace.Wrap(newFieldError("default_scheme", "scheme %q is not registered", c.DefaultScheme))
	}
	return p, def, nil
}

// Logger returns a logger writing to w in the configured format and level.
// The config is expected to be validated.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(c.Log.Level))
	return log.New(w, log.Format(c.Log.Format), lvl)
}
