package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparse/internal/constraints"
	"github.com/ghettovoice/uriparse/internal/grammar"
)

// Parser parses URI strings with a scheme registry and a query mode.
//
// Parse is safe for concurrent use. SetMode must not be called
// concurrently with Parse.
type Parser struct {
	mode     QueryMode
	registry *Registry
}

// NewParser returns a parser configured with the options.
// Defaults are [ModeDuplicateLast] and [DefaultRegistry].
func NewParser(opts ...ParserOption) (*Parser, error) {
	var options ParserOptions
	for _, opt := range opts {
		opt.ApplyParser(&options)
	}
	if err := options.Mode.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if options.Registry == nil {
		options.Registry = DefaultRegistry()
	}
	return &Parser{mode: options.Mode, registry: options.Registry}, nil
}

// SetMode selects the duplicate handling mode for subsequent Parse calls.
func (p *Parser) SetMode(mode QueryMode) error {
	if err := mode.Validate(); err != nil {
		return errtrace.Wrap(err)
	}
	p.mode = mode
	return nil
}

// Mode returns the active query mode.
func (p *Parser) Mode() QueryMode { return p.mode }

// Registry returns the scheme registry.
func (p *Parser) Registry() *Registry { return p.registry }

// Parse parses s into a [URI].
//
// The scheme token is looked up in the registry. An absent or unregistered token
// is replaced by def, with def nil this fails with [ErrMissingScheme].
// The authority is resolved only when "//" is present, the query only when "?" is present
// and the fragment only when "#" is present.
func (p *Parser) Parse(s string, def Scheme) (*URI, error) {
	mode := p.mode

	m, ok := grammar.MatchURI(s)
	if !ok {
		return nil, errtrace.Wrap(newMalformedURIErr("%q", s))
	}

	var u URI
	if m.HasScheme {
		u.scheme, _ = p.registry.Lookup(m.Scheme)
	}
	if u.scheme == nil {
		u.scheme = def
	}
	if u.scheme == nil {
		if m.HasScheme {
			return nil, errtrace.Wrap(newMissingSchemeErr("unknown scheme %q", m.Scheme))
		}
		return nil, errtrace.Wrap(newMissingSchemeErr())
	}

	if m.HasAuthority {
		auth, err := ParseAuthority(m.Authority)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		u.auth, u.hasAuth = auth, true
	}

	path, err := parsePath(m.Path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	u.path = path

	if m.HasQuery {
		q, err := parseQuery(m.Query, mode)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		u.query, u.hasQuery = q, true
	}

	if m.HasFragment {
		u.frag, u.hasFrag = Fragment(m.Fragment), true
	}
	return &u, nil
}

var defaultParser = &Parser{registry: DefaultRegistry()}

// Parse parses s (string or []byte) with the built-in schemes and [ModeDuplicateLast].
// See [Parser.Parse].
func Parse[T constraints.Byteseq](s T, def Scheme) (*URI, error) {
	return errtrace.Wrap2(defaultParser.Parse(string(s), def))
}
