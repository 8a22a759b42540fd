package grammar

import (
	"bytes"
	"strings"

	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/uriparse/internal/grammar/rfc3986"
)

// span matches the possibly empty run of bytes up to the first of stops.
// The authority, path, query and fragment are only delimited here,
// their characters are checked by the component parsers.
func span(key, stops string) abnf.Operator {
	return func(in []byte, pos uint, ns *abnf.Nodes) error {
		end := len(in)
		if i := bytes.IndexAny(in[pos:], stops); i >= 0 {
			end = int(pos) + i
		}
		ns.Append(&abnf.Node{Key: key, Pos: pos, Value: in[pos:end]})
		return nil
	}
}

var schemeColon = abnf.Concat(
	"scheme \":\"",
	rfc3986.Operators().Scheme,
	abnf.Literal("\":\"", []byte{':'}),
)

// schemePrefix matches scheme ":" only if the colon comes before any of "/?#".
func schemePrefix(in []byte, pos uint, ns *abnf.Nodes) error {
	i := bytes.IndexAny(in[pos:], ":/?#")
	if i < 0 || in[int(pos)+i] != ':' {
		return abnf.ErrNotMatched //errtrace:skip
	}
	return schemeColon(in[:int(pos)+i+1], pos, ns) //errtrace:skip
}

var uriReference = abnf.Concat(
	"URI-reference",
	abnf.Optional("[ scheme \":\" ]", schemePrefix),
	abnf.Optional(
		"[ \"//\" authority ]",
		abnf.Concat(
			"\"//\" authority",
			abnf.Literal("\"//\"", []byte{'/', '/'}),
			span("authority", "/?#"),
		),
	),
	span("path", "?#"),
	abnf.Optional(
		"[ \"?\" query ]",
		abnf.Concat(
			"\"?\" query",
			abnf.Literal("\"?\"", []byte{'?'}),
			span("query", "#"),
		),
	),
	abnf.Optional(
		"[ \"#\" fragment ]",
		abnf.Concat(
			"\"#\" fragment",
			abnf.Literal("\"#\"", []byte{'#'}),
			span("fragment", "\n"),
		),
	),
)

var queryParam = abnf.Concat(
	"query-param",
	span("name", "&=#"),
	abnf.Optional(
		"[ \"=\" value ]",
		abnf.Concat(
			"\"=\" value",
			abnf.Literal("\"=\"", []byte{'='}),
			span("value", "&#"),
		),
	),
)

// URIMatch holds the top-level components of a URI reference.
// The Has* flags tell an absent component from a present but empty one.
type URIMatch struct {
	Scheme       string
	Authority    string
	Path         string
	Query        string
	Fragment     string
	HasScheme    bool
	HasAuthority bool
	HasQuery     bool
	HasFragment  bool
}

// MatchURI splits s into its top-level components.
// It reports false only if s does not fit the URI reference structure at all.
func MatchURI(s string) (URIMatch, bool) {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := uriReference([]byte(s), 0, ns); err != nil {
		return URIMatch{}, false
	}
	n := ns.Best()
	if n.Len() != len(s) {
		return URIMatch{}, false
	}

	var m URIMatch
	m.Scheme, m.HasScheme = nodeValue(n, "scheme")
	m.Authority, m.HasAuthority = nodeValue(n, "authority")
	m.Path, _ = nodeValue(n, "path")
	m.Query, m.HasQuery = nodeValue(n, "query")
	m.Fragment, m.HasFragment = nodeValue(n, "fragment")
	return m, true
}

// HostVariant enumerates the host alternatives of the authority grammar.
type HostVariant int

const (
	HostRegName HostVariant = iota
	HostIPv4
	HostIPv6
)

// AuthorityMatch holds the raw, still escaped, parts of an authority.
type AuthorityMatch struct {
	User        string
	Password    string
	Host        string
	HostVariant HostVariant
	Port        string
	HasUserInfo bool
	HasPassword bool
	HasPort     bool
}

// MatchAuthority splits an authority into userinfo, host and port.
// IPv6 hosts are returned without the enclosing brackets.
func MatchAuthority(s string) (AuthorityMatch, bool) {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3986.Rules().Authority([]byte(s), ns); err != nil {
		return AuthorityMatch{}, false
	}
	n := ns.Best()
	if n.Len() != len(s) {
		return AuthorityMatch{}, false
	}

	var m AuthorityMatch
	if ui, ok := nodeValue(n, "userinfo"); ok {
		m.User, m.Password, m.HasPassword = strings.Cut(ui, ":")
		if m.User == "" {
			return AuthorityMatch{}, false
		}
		m.HasUserInfo = true
	}
	m.Host, _ = nodeValue(n, "host")
	switch {
	case strings.HasPrefix(m.Host, "["):
		m.Host, m.HostVariant = m.Host[1:len(m.Host)-1], HostIPv6
	case isIPv4(m.Host):
		m.HostVariant = HostIPv4
	default:
		m.HostVariant = HostRegName
	}
	m.Port, m.HasPort = nodeValue(n, "port")
	return m, true
}

func isIPv4(s string) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3986.Rules().IPv4address([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// ParamMatch is a single raw name[=value] pair of a query.
type ParamMatch struct {
	Name     string
	Value    string
	HasValue bool
}

// MatchQueryParams matches the "&"-delimited name[=value] pairs of a query one at a time.
// Pairs with an empty name are skipped. Names and values are returned undecoded.
func MatchQueryParams(s string) []ParamMatch {
	in := []byte(s)
	ns := abnf.NewNodes()
	defer ns.Free()

	pms := make([]ParamMatch, 0, strings.Count(s, "&")+1)
	for pos := 0; pos < len(in); {
		ns.Clear()
		if err := queryParam(in, uint(pos), ns); err != nil {
			break
		}
		n := ns.Best()
		if name, _ := nodeValue(n, "name"); name != "" {
			pm := ParamMatch{Name: name}
			pm.Value, pm.HasValue = nodeValue(n, "value")
			pms = append(pms, pm)
		}

		i := bytes.IndexByte(in[pos:], '&')
		if i < 0 {
			break
		}
		pos += i + 1
	}
	return pms
}

func nodeValue(n *abnf.Node, key string) (string, bool) {
	sn, ok := n.GetNode(key)
	if !ok {
		return "", false
	}
	return sn.String(), true
}

// SplitBrackets splits an array-style parameter name like "a[b][]" into its
// base name "a" and the bracketed keys ["b", ""].
// It reports false for names without brackets, with an empty base name,
// or with anything but bracket groups after the base name.
func SplitBrackets(name string) (base string, keys []string, ok bool) {
	i := strings.IndexByte(name, '[')
	if i <= 0 {
		return "", nil, false
	}

	base, rest := name[:i], name[i:]
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		j := strings.IndexByte(rest, ']')
		if j < 0 {
			return "", nil, false
		}
		keys = append(keys, rest[1:j])
		rest = rest[j+1:]
	}
	return base, keys, true
}
