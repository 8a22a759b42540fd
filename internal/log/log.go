// Package log provides the slog loggers of the command line tools.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/uriparse/internal/constraints"
	"github.com/ghettovoice/uriparse/uri"
)

var hidePasswd = &uri.RenderOptions{HidePassword: true}

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(u *uri.URI) slog.Value {
		if u == nil {
			return slog.StringValue("<nil>")
		}
		attrs := []slog.Attr{slog.String("uri", u.Render(hidePasswd))}
		if s := u.Scheme(); s != nil {
			attrs = append(attrs, slog.String("scheme", s.Name()))
		}
		if auth, ok := u.Authority(); ok {
			attrs = append(attrs, slog.String("authority", auth.Render(hidePasswd)))
		}
		attrs = append(attrs, slog.Int("segments", u.Path().Len()))
		if q, ok := u.Query(); ok {
			attrs = append(attrs, slog.Int("params", q.Len()))
		}
		return slog.GroupValue(attrs...)
	}),
	slogformatter.FormatByType(func(a uri.Authority) slog.Value {
		return slog.StringValue(a.Render(hidePasswd))
	}),
	slogformatter.FormatByType(func(m uri.QueryMode) slog.Value {
		return slog.StringValue(m.String())
	}),
)

// Format selects the handler of a logger built by [New].
type Format string

const (
	FormatConsole Format = "console"
	FormatDev     Format = "dev"
	FormatNone    Format = "none"
)

// New returns a logger writing to w in the given format.
// [FormatNone] and unknown formats return [Noop].
func New(w io.Writer, format Format, level slog.Leveler) *slog.Logger {
	switch format {
	case FormatConsole:
		return slog.New(newHandler(
			console.NewHandler(w, &console.HandlerOptions{
				AddSource:  true,
				Level:      level,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	case FormatDev:
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	default:
		return Noop
	}
}

// Def is a default logger.
var Def = New(os.Stderr, FormatConsole, slog.LevelInfo)

// Dev is a developer logger.
var Dev = New(os.Stderr, FormatDev, slog.LevelDebug)

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
