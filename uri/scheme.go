package uri

import (
	"maps"
	"slices"

	"github.com/ghettovoice/uriparse/internal/util"
)

// Scheme identifies how the rest of a URI is interpreted.
type Scheme interface {
	// Name returns the protocol token, e.g. "http".
	Name() string
	// DefaultPort returns the well-known port of the scheme, if any.
	DefaultPort() (uint16, bool)
}

//go:generate go tool mockgen -destination=urimock/scheme.go -package=urimock . Scheme

// SchemeFactory constructs a [Scheme] for a registered token.
type SchemeFactory func() Scheme

type stdScheme struct {
	name    string
	port    uint16
	hasPort bool
}

func (s stdScheme) Name() string { return s.name }

func (s stdScheme) DefaultPort() (uint16, bool) { return s.port, s.hasPort }

func (s stdScheme) String() string { return s.name }

// NewScheme returns a [Scheme] with the given token and no default port.
func NewScheme(name string) Scheme { return stdScheme{name: util.LCase(name)} }

// NewSchemePort returns a [Scheme] with the given token and default port.
func NewSchemePort(name string, port uint16) Scheme {
	return stdScheme{name: util.LCase(name), port: port, hasPort: true}
}

// Built-in schemes.
var (
	HTTP   = NewSchemePort("http", 80)
	HTTPS  = NewSchemePort("https", 443)
	FTP    = NewSchemePort("ftp", 21)
	WS     = NewSchemePort("ws", 80)
	WSS    = NewSchemePort("wss", 443)
	File   = NewScheme("file")
	Mailto = NewScheme("mailto")
	URN    = NewScheme("urn")
	ISBN   = NewScheme("isbn")
)

func constScheme(s Scheme) SchemeFactory { return func() Scheme { return s } }

var stdSchemes = map[string]SchemeFactory{
	"http":   constScheme(HTTP),
	"https":  constScheme(HTTPS),
	"ftp":    constScheme(FTP),
	"ws":     constScheme(WS),
	"wss":    constScheme(WSS),
	"file":   constScheme(File),
	"mailto": constScheme(Mailto),
	"urn":    constScheme(URN),
	"isbn":   constScheme(ISBN),
}

// Registry maps scheme tokens to scheme factories.
// Tokens are matched case-insensitively.
// A Registry is never modified after construction, use [Registry.With] to extend it.
type Registry struct {
	factories map[string]SchemeFactory
}

// NewRegistry builds a registry from the given token to factory map.
func NewRegistry(factories map[string]SchemeFactory) *Registry {
	r := &Registry{factories: make(map[string]SchemeFactory, len(factories))}
	for tok, f := range factories {
		if f != nil {
			r.factories[util.LCase(tok)] = f
		}
	}
	return r
}

// DefaultRegistry returns a registry of the built-in schemes:
// http, https, ftp, ws, wss, file, mailto, urn and isbn.
func DefaultRegistry() *Registry { return NewRegistry(stdSchemes) }

// Lookup constructs the scheme registered for the token.
func (r *Registry) Lookup(token string) (Scheme, bool) {
	if r == nil || token == "" {
		return nil, false
	}
	f, ok := r.factories[util.LCase(token)]
	if !ok {
		return nil, false
	}
	s := f()
	return s, s != nil
}

// Has reports whether the token is registered.
func (r *Registry) Has(token string) bool {
	if r == nil {
		return false
	}
	_, ok := r.factories[util.LCase(token)]
	return ok
}

// With returns a copy of the registry with the factory registered for the token.
func (r *Registry) With(token string, factory SchemeFactory) *Registry {
	r2 := NewRegistry(nil)
	if r != nil {
		maps.Copy(r2.factories, r.factories)
	}
	if factory == nil {
		delete(r2.factories, util.LCase(token))
	} else {
		r2.factories[util.LCase(token)] = factory
	}
	return r2
}

// Tokens returns the registered tokens in sorted order.
func (r *Registry) Tokens() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.factories))
}
