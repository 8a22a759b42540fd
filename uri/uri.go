package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparse/internal/ioutil"
	"github.com/ghettovoice/uriparse/internal/types"
	"github.com/ghettovoice/uriparse/internal/util"
)

// RenderOptions contains options for rendering URIs.
type RenderOptions = types.RenderOptions

var (
	_ types.Renderer  = (*URI)(nil)
	_ types.Renderer  = Authority{}
	_ types.Renderer  = Path{}
	_ types.Renderer  = Query{}
	_ types.ValidFlag = (*URI)(nil)
	_ types.ValidFlag = Authority{}
)

// Fragment is the part after "#", stored and rendered verbatim.
type Fragment string

func (f Fragment) String() string { return string(f) }

// URI is a parsed URI. It is immutable once built.
type URI struct {
	scheme   Scheme
	auth     Authority
	path     Path
	query    Query
	frag     Fragment
	hasAuth  bool
	hasQuery bool
	hasFrag  bool
}

// Parts lists the components of a [URI]. Nil pointers mean absent components.
type Parts struct {
	Scheme    Scheme
	Authority *Authority
	Path      Path
	Query     *Query
	Fragment  *Fragment
}

// Build assembles a URI from parts. A nil scheme fails with [ErrMissingScheme].
// Without an authority a path of two or more segments must not start with an empty one,
// otherwise Build fails with [ErrMalformedURI].
func Build(p Parts) (*URI, error) {
	if p.Scheme == nil {
		return nil, errtrace.Wrap(newMissingSchemeErr())
	}
	if p.Authority == nil && p.Path.Len() > 1 && p.Path.Segment(0) == "" {
		return nil, errtrace.Wrap(newMalformedURIErr("path %q starts with an empty segment and there is no authority", p.Path.Segments()))
	}
	u := &URI{scheme: p.Scheme, path: p.Path}
	if p.Authority != nil {
		u.auth, u.hasAuth = *p.Authority, true
	}
	if p.Query != nil {
		u.query, u.hasQuery = NewQuery(p.Query.params...), true
	}
	if p.Fragment != nil {
		u.frag, u.hasFrag = *p.Fragment, true
	}
	return u, nil
}

// Parts returns the components of the URI.
func (u *URI) Parts() Parts {
	if u == nil {
		return Parts{}
	}
	p := Parts{Scheme: u.scheme, Path: u.path}
	if u.hasAuth {
		auth := u.auth
		p.Authority = &auth
	}
	if u.hasQuery {
		q := NewQuery(u.query.params...)
		p.Query = &q
	}
	if u.hasFrag {
		frag := u.frag
		p.Fragment = &frag
	}
	return p
}

// Scheme returns the resolved scheme.
func (u *URI) Scheme() Scheme {
	if u == nil {
		return nil
	}
	return u.scheme
}

// Authority returns the authority and whether it is present.
func (u *URI) Authority() (Authority, bool) {
	if u == nil {
		return Authority{}, false
	}
	return u.auth, u.hasAuth
}

// Path returns the path, possibly with no segments.
func (u *URI) Path() Path {
	if u == nil {
		return Path{}
	}
	return u.path
}

// Query returns the query and whether it is present.
func (u *URI) Query() (Query, bool) {
	if u == nil {
		return Query{}, false
	}
	return u.query, u.hasQuery
}

// Fragment returns the fragment and whether it is present.
func (u *URI) Fragment() (Fragment, bool) {
	if u == nil {
		return "", false
	}
	return u.frag, u.hasFrag
}

// RenderTo writes the URI to w.
// A non-rooted, non-empty path gets a leading "/" when an authority is present.
func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.scheme != nil {
		cw.WriteString(u.scheme.Name())
		cw.WriteString(":")
	}
	if u.hasAuth {
		cw.WriteString("//")
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.auth.RenderTo(w, opts)) })
		if !u.path.IsRooted() && !u.path.IsEmpty() {
			cw.WriteString("/")
		}
	}
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.path.RenderTo(w, opts)) })
	if u.hasQuery {
		cw.WriteString("?")
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.query.RenderTo(w, opts)) })
	}
	if u.hasFrag {
		cw.WriteString("#")
		cw.WriteString(string(u.frag))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URI.
func (u *URI) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (u *URI) String() string {
	if u == nil {
		return "<nil>"
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if u == nil {
			fmt.Fprint(f, "<nil>")
			return
		}
		u.RenderTo(f, nil) //nolint:errcheck
	case 'q':
		if u == nil {
			fmt.Fprint(f, "<nil>")
			return
		}
		fmt.Fprint(f, strconv.Quote(u.Render(nil)))
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
	}
}

// Equal reports whether val is an equal URI, accepting URI and *URI.
// Scheme names compare case-insensitively, the other components per their own Equal.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return schemesEqual(u.scheme, other.scheme) &&
		u.hasAuth == other.hasAuth && u.auth.Equal(other.auth) &&
		u.path.Equal(other.path) &&
		u.hasQuery == other.hasQuery && u.query.Equal(other.query) &&
		u.hasFrag == other.hasFrag && u.frag == other.frag
}

func schemesEqual(s1, s2 Scheme) bool {
	if s1 == nil || s2 == nil {
		return s1 == nil && s2 == nil
	}
	return util.EqFold(s1.Name(), s2.Name())
}

// IsValid reports whether the URI has a scheme and, if present, a valid authority.
func (u *URI) IsValid() bool {
	return u != nil && u.scheme != nil && (!u.hasAuth || u.auth.IsValid())
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.Render(nil)), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The text must carry a registered scheme.
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text, nil)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
