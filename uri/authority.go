package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparse/internal/grammar"
	"github.com/ghettovoice/uriparse/internal/ioutil"
	"github.com/ghettovoice/uriparse/internal/util"
)

// Authority is the "userinfo@host:port" component of a URI.
type Authority struct {
	host    Host
	user    UserInfo
	port    uint16
	hasPort bool
}

// NewAuthority returns an [Authority] with the given host, no port and no userinfo.
func NewAuthority(host Host) Authority {
	return Authority{host: host}
}

// WithPort returns a copy of the authority with the port set.
func (a Authority) WithPort(port uint16) Authority {
	a.port, a.hasPort = port, true
	return a
}

// WithUser returns a copy of the authority with the userinfo set.
// The zero [UserInfo] removes it.
func (a Authority) WithUser(ui UserInfo) Authority {
	a.user = ui
	return a
}

// ParseAuthority parses the authority component, given without the leading "//".
// User and password are stored decoded, the host is stored as written.
// An empty port, as in "example.com:", is treated as absent.
func ParseAuthority(s string) (Authority, error) {
	m, ok := grammar.MatchAuthority(s)
	if !ok {
		return Authority{}, errtrace.Wrap(newMalformedAuthorityErr("%q", s))
	}

	var a Authority
	switch m.HostVariant {
	case grammar.HostIPv4:
		h, err := ParseIPv4(m.Host)
		if err != nil {
			return Authority{}, errtrace.Wrap(err)
		}
		a.host = h
	case grammar.HostIPv6:
		h, err := ParseIPv6(m.Host)
		if err != nil {
			return Authority{}, errtrace.Wrap(err)
		}
		a.host = h
	default:
		h, err := ParseName(m.Host)
		if err != nil {
			return Authority{}, errtrace.Wrap(err)
		}
		a.host = h
	}

	if m.HasUserInfo {
		usrname := grammar.Unescape(m.User)
		if m.HasPassword {
			a.user = UserPassword(usrname, grammar.Unescape(m.Password))
		} else {
			a.user = User(usrname)
		}
	}

	if m.HasPort && m.Port != "" {
		port, err := strconv.ParseUint(m.Port, 10, 16)
		if err != nil {
			return Authority{}, errtrace.Wrap(newMalformedAuthorityErr("port %q is out of range", m.Port))
		}
		a.port, a.hasPort = uint16(port), true
	}
	return a, nil
}

// Host returns the host, nil for the zero Authority.
func (a Authority) Host() Host { return a.host }

// Port returns the port, in case it is set, and bool flag indicating whether it is set.
func (a Authority) Port() (uint16, bool) { return a.port, a.hasPort }

// EffectivePort returns the explicit port or, if unset, the default port of the scheme.
func (a Authority) EffectivePort(s Scheme) (uint16, bool) {
	if a.hasPort {
		return a.port, true
	}
	if s == nil {
		return 0, false
	}
	return s.DefaultPort()
}

// User returns the userinfo, the zero [UserInfo] if the authority has none.
func (a Authority) User() UserInfo { return a.user }

// RenderTo writes the authority, without the leading "//".
func (a Authority) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if !a.user.IsZero() {
		cw.WriteString(a.user.render(opts != nil && opts.HidePassword))
		cw.WriteString("@")
	}
	if a.host != nil {
		switch h := a.host.(type) {
		case IPv6:
			cw.WriteString("[" + h.String() + "]")
		case IPv4, Name:
			cw.WriteString(h.String())
		}
	}
	if a.hasPort {
		cw.WriteString(":" + strconv.Itoa(int(a.port)))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the authority.
func (a Authority) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	a.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (a Authority) String() string { return a.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the Authority.
func (a Authority) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, a.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(a.String()))
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, a.String())
			return
		}
		type hideMethods Authority
		type Authority hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Authority(a))
	}
}

// Equal reports whether val is an equal authority, accepting Authority and *Authority.
// Hosts compare per variant, names case-insensitively.
func (a Authority) Equal(val any) bool {
	var other Authority
	switch v := val.(type) {
	case Authority:
		other = v
	case *Authority:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hostsEqual(a.host, other.host) &&
		a.port == other.port && a.hasPort == other.hasPort &&
		a.user.Equal(other.user)
}

// IsValid reports whether the authority has a host and a non-empty name host is a domain name.
func (a Authority) IsValid() bool {
	if a.host == nil || !a.user.IsZero() && !a.user.IsValid() {
		return false
	}
	if h, ok := a.host.(Name); ok && h != "" {
		return h.IsDomain()
	}
	return true
}

// IsZero reports whether the authority is the zero value.
func (a Authority) IsZero() bool { return a.host == nil && a.user.IsZero() && !a.hasPort }
