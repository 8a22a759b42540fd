package uri

import (
	"net/netip"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"

	"github.com/ghettovoice/uriparse/internal/grammar"
	"github.com/ghettovoice/uriparse/internal/util"
)

// HostKind enumerates the host variants.
type HostKind int

const (
	HostName HostKind = iota
	HostIPv4
	HostIPv6
)

func (k HostKind) String() string {
	switch k {
	case HostName:
		return "name"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	default:
		return "unknown"
	}
}

// Host is the host of an authority: one of [IPv4], [IPv6] or [Name].
// The set of implementations is closed.
type Host interface {
	// Kind returns the active variant.
	Kind() HostKind
	// String returns the host as written in an authority, without IPv6 brackets.
	String() string
	Equal(val any) bool

	host()
}

// IPv4 is an IPv4 address host.
type IPv4 struct {
	addr netip.Addr
}

// ParseIPv4 parses a dotted-decimal IPv4 address.
func ParseIPv4(s string) (IPv4, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return IPv4{}, errtrace.Wrap(newMalformedAuthorityErr(err))
	}
	if !addr.Is4() {
		return IPv4{}, errtrace.Wrap(newMalformedAuthorityErr("%q is not an IPv4 address", s))
	}
	return IPv4{addr}, nil
}

func (IPv4) host() {}

func (IPv4) Kind() HostKind { return HostIPv4 }

// Addr returns the address.
func (h IPv4) Addr() netip.Addr { return h.addr }

func (h IPv4) String() string { return h.addr.String() }

// Equal reports whether val is the same IPv4 address, accepting IPv4 and *IPv4.
func (h IPv4) Equal(val any) bool {
	switch v := val.(type) {
	case IPv4:
		return h.addr == v.addr
	case *IPv4:
		return v != nil && h.addr == v.addr
	default:
		return false
	}
}

// IPv6 is an IPv6 address host, written in brackets in an authority.
type IPv6 struct {
	addr netip.Addr
}

// ParseIPv6 parses an IPv6 address given without brackets.
func ParseIPv6(s string) (IPv6, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return IPv6{}, errtrace.Wrap(newMalformedAuthorityErr(err))
	}
	if !addr.Is6() || addr.Zone() != "" {
		return IPv6{}, errtrace.Wrap(newMalformedAuthorityErr("%q is not an IPv6 address", s))
	}
	return IPv6{addr}, nil
}

func (IPv6) host() {}

func (IPv6) Kind() HostKind { return HostIPv6 }

// Addr returns the address.
func (h IPv6) Addr() netip.Addr { return h.addr }

func (h IPv6) String() string { return h.addr.String() }

// Equal reports whether val is the same IPv6 address, accepting IPv6 and *IPv6.
func (h IPv6) Equal(val any) bool {
	switch v := val.(type) {
	case IPv6:
		return h.addr == v.addr
	case *IPv6:
		return v != nil && h.addr == v.addr
	default:
		return false
	}
}

// Name is a registered name host (reg-name), kept as written,
// percent-encoded octets included.
type Name string

// ParseName validates a reg-name: unreserved, sub-delims and pct-encoded octets.
// The empty name is valid. Whether the name is also a DNS name is reported by [Name.IsDomain].
func ParseName(s string) (Name, error) {
	for i := 0; i < len(s); i++ {
		switch {
		case grammar.IsRegNameChar(s[i]):
		case s[i] == '%' && i+2 < len(s) && grammar.IsHexDigit(s[i+1]) && grammar.IsHexDigit(s[i+2]):
			i += 2
		default:
			return "", errtrace.Wrap(newMalformedAuthorityErr("invalid character %q in host %q", s[i], s))
		}
	}
	return Name(s), nil
}

// IsDomain reports whether the decoded name fits the DNS label and name length limits
// and has no empty labels. The empty name is not a domain.
func (h Name) IsDomain() bool {
	if h == "" {
		return false
	}
	_, ok := dns.IsDomainName(strings.ReplaceAll(grammar.Unescape(string(h)), `\`, `\\`))
	return ok
}

func (Name) host() {}

func (Name) Kind() HostKind { return HostName }

func (h Name) String() string { return string(h) }

// ASCII returns the decoded name converted to its IDNA ASCII form, e.g. "xn--bcher-kva.example".
func (h Name) ASCII() (string, error) {
	return errtrace.Wrap2(idna.Lookup.ToASCII(grammar.Unescape(string(h))))
}

// Unicode returns the decoded name with IDNA labels converted to Unicode, e.g. "bücher.example".
func (h Name) Unicode() (string, error) {
	return errtrace.Wrap2(idna.Display.ToUnicode(grammar.Unescape(string(h))))
}

// Equal reports whether val is the same name, compared case-insensitively.
func (h Name) Equal(val any) bool {
	switch v := val.(type) {
	case Name:
		return util.EqFold(h, v)
	case *Name:
		return v != nil && util.EqFold(h, *v)
	default:
		return false
	}
}

func hostsEqual(h1, h2 Host) bool {
	if h1 == nil || h2 == nil {
		return h1 == nil && h2 == nil
	}
	return h1.Equal(h2)
}
