package config

import (
	"fmt"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparse/internal/errorutil"
	"github.com/ghettovoice/uriparse/internal/grammar"
	"github.com/ghettovoice/uriparse/internal/log"
	"github.com/ghettovoice/uriparse/internal/util"
)

// ErrInvalidConfig is returned for configurations that fail validation.
const ErrInvalidConfig errorutil.Error = "invalid config"

// FieldError is a validation error of a single configuration field.
type FieldError struct {
	// Field is the dotted path of the field, e.g. "schemes[0].name".
	Field string
	Err   error
}

func newFieldError(field string, args ...any) *FieldError {
	return &FieldError{Field: field, Err: errorutil.NewWrapperError(ErrInvalidConfig, args...)}
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }

// Validate checks the whole configuration and reports all failures at once.
func Validate(cfg *Config) error {
	var errs []error

	if err := cfg.QueryMode.Validate(); err != nil {
		errs = append(errs, newFieldError("query_mode", err))
	}

	seen := make(map[string]int, len(cfg.Schemes))
	for i, sc := range cfg.Schemes {
		field := fmt.Sprintf("schemes[%d].name", i)
		if !grammar.IsScheme(sc.Name) {
			errs = append(errs, newFieldError(field, "%q is not a scheme token", sc.Name))
			continue
		}
		tok := util.LCase(sc.Name)
		if j, ok := seen[tok]; ok {
			errs = append(errs, newFieldError(field, "scheme %q duplicates schemes[%d]", sc.Name, j))
			continue
		}
		seen[tok] = i
	}

	if cfg.DefaultScheme != "" && !cfg.Registry().Has(cfg.DefaultScheme) {
		errs = append(errs, newFieldError("default_scheme", "scheme %q is not registered", cfg.DefaultScheme))
	}

	switch log.Format(cfg.Log.Format) {
	case log.FormatConsole, log.FormatDev, log.FormatNone:
	default:
		errs = append(errs, newFieldError("log.format", "unknown format %q", cfg.Log.Format))
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		errs = append(errs, newFieldError("log.level", err))
	}

	return errtrace.Wrap(errorutil.JoinPrefix("configuration validation failed:", errs...))
}
