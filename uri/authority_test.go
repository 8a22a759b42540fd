package uri_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uriparse/uri"
)

func mustIPv4(t *testing.T, s string) uri.IPv4 {
	t.Helper()
	h, err := uri.ParseIPv4(s)
	if err != nil {
		t.Fatalf("uri.ParseIPv4(%q) error = %v, want nil", s, err)
	}
	return h
}

func mustIPv6(t *testing.T, s string) uri.IPv6 {
	t.Helper()
	h, err := uri.ParseIPv6(s)
	if err != nil {
		t.Fatalf("uri.ParseIPv6(%q) error = %v, want nil", s, err)
	}
	return h
}

func TestParseAuthority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    uri.Authority
		wantErr error
	}{
		{
			"user password host port",
			"user:pass@example.com:8080",
			uri.NewAuthority(uri.Name("example.com")).WithPort(8080).WithUser(uri.UserPassword("user", "pass")),
			nil,
		},
		{"ipv4", "192.0.2.1", uri.NewAuthority(mustIPv4(t, "192.0.2.1")), nil},
		{"ipv6 port", "[::1]:80", uri.NewAuthority(mustIPv6(t, "::1")).WithPort(80), nil},
		{"empty port", "example.com:", uri.NewAuthority(uri.Name("example.com")), nil},
		{"zero port", "example.com:0", uri.NewAuthority(uri.Name("example.com")).WithPort(0), nil},
		{"empty", "", uri.NewAuthority(uri.Name("")), nil},
		{"empty password", "user:@host", uri.NewAuthority(uri.Name("host")).WithUser(uri.UserPassword("user", "")), nil},
		{"escaped user", "us%40er@host", uri.NewAuthority(uri.Name("host")).WithUser(uri.User("us@er")), nil},
		{"dotted non ipv4", "1.2.3.4.5", uri.NewAuthority(uri.Name("1.2.3.4.5")), nil},
		{"empty label", "a..b", uri.NewAuthority(uri.Name("a..b")), nil},
		{"escaped backslash", "%5C:80", uri.NewAuthority(uri.Name("%5C")).WithPort(80), nil},
		{"port out of range", "example.com:65536", uri.Authority{}, uri.ErrMalformedAuthority},
		{"non digit port", "example.com:http", uri.Authority{}, uri.ErrMalformedAuthority},
		{"unclosed ipv6", "[::1", uri.Authority{}, uri.ErrMalformedAuthority},
		{"bad ipv6", "[1:2:3]", uri.Authority{}, uri.ErrMalformedAuthority},
		{"space in host", "exa mple.com", uri.Authority{}, uri.ErrMalformedAuthority},
		{"empty user", "@host", uri.Authority{}, uri.ErrMalformedAuthority},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ParseAuthority(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.ParseAuthority(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.ParseAuthority(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestParseAuthority_HostKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want uri.HostKind
	}{
		{"192.0.2.1:5060", uri.HostIPv4},
		{"[2001:db8::1]", uri.HostIPv6},
		{"example.com", uri.HostName},
		{"999.0.0.1", uri.HostName},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			a, err := uri.ParseAuthority(c.in)
			if err != nil {
				t.Fatalf("uri.ParseAuthority(%q) error = %v, want nil", c.in, err)
			}
			if got := a.Host().Kind(); got != c.want {
				t.Errorf("uri.ParseAuthority(%q).Host().Kind() = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestAuthority_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"example.com", true},
		{"", true},
		{"192.0.2.1", true},
		{"[::1]", true},
		{"a..b", false},
		{".example", false},
		{strings.Repeat("a", 64) + ".com", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			a, err := uri.ParseAuthority(c.in)
			if err != nil {
				t.Fatalf("uri.ParseAuthority(%q) error = %v, want nil", c.in, err)
			}
			if got := a.IsValid(); got != c.want {
				t.Errorf("uri.ParseAuthority(%q).IsValid() = %v, want %v", c.in, got, c.want)
			}
		})
	}

	if (uri.Authority{}).IsValid() {
		t.Errorf("uri.Authority{}.IsValid() = true, want false")
	}
}

func TestAuthority_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		auth uri.Authority
		opts *uri.RenderOptions
		want string
	}{
		{"zero", uri.Authority{}, nil, ""},
		{"name", uri.NewAuthority(uri.Name("example.com")), nil, "example.com"},
		{"ipv6 port", uri.NewAuthority(mustIPv6(t, "2001:db8::1")).WithPort(443), nil, "[2001:db8::1]:443"},
		{
			"user password",
			uri.NewAuthority(uri.Name("host")).WithUser(uri.UserPassword("a b", "p@ss")),
			nil,
			"a%20b:p%40ss@host",
		},
		{
			"hidden password",
			uri.NewAuthority(uri.Name("host")).WithUser(uri.UserPassword("root", "secret")),
			&uri.RenderOptions{HidePassword: true},
			"root:xxxxx@host",
		},
		{
			"escaped percent",
			uri.NewAuthority(uri.Name("host")).WithUser(uri.User("100%")),
			nil,
			"100%25@host",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.auth.Render(c.opts); got != c.want {
				t.Errorf("auth.Render(opts) = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAuthority_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []string{
		"user:pass@example.com:8080",
		"[2001:db8::1]:5060",
		"192.0.2.1",
		"us%40er:p%40ss@host",
		"example.com",
	}

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			a, err := uri.ParseAuthority(in)
			if err != nil {
				t.Fatalf("uri.ParseAuthority(%q) error = %v, want nil", in, err)
			}
			if got := a.String(); got != in {
				t.Errorf("uri.ParseAuthority(%q).String() = %q, want %q", in, got, in)
			}
		})
	}
}

func TestAuthority_EffectivePort(t *testing.T) {
	t.Parallel()

	a := uri.NewAuthority(uri.Name("example.com"))
	if port, ok := a.EffectivePort(uri.HTTPS); port != 443 || !ok {
		t.Errorf("a.EffectivePort(HTTPS) = (%d, %v), want (443, true)", port, ok)
	}
	if port, ok := a.EffectivePort(uri.URN); ok {
		t.Errorf("a.EffectivePort(URN) = (%d, %v), want (0, false)", port, ok)
	}
	if port, ok := a.WithPort(8443).EffectivePort(uri.HTTPS); port != 8443 || !ok {
		t.Errorf("a.WithPort(8443).EffectivePort(HTTPS) = (%d, %v), want (8443, true)", port, ok)
	}
	if port, ok := a.EffectivePort(nil); ok {
		t.Errorf("a.EffectivePort(nil) = (%d, %v), want (0, false)", port, ok)
	}
}

func TestAuthority_Equal(t *testing.T) {
	t.Parallel()

	a := uri.NewAuthority(uri.Name("Example.com")).WithPort(80)
	same := uri.NewAuthority(uri.Name("example.com")).WithPort(80)
	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"same", uri.NewAuthority(uri.Name("example.COM")).WithPort(80), true},
		{"ptr", &same, true},
		{"nil ptr", (*uri.Authority)(nil), false},
		{"no port", uri.NewAuthority(uri.Name("example.com")), false},
		{"with user", uri.NewAuthority(uri.Name("example.com")).WithPort(80).WithUser(uri.User("u")), false},
		{"ip host", uri.NewAuthority(mustIPv4(t, "192.0.2.1")).WithPort(80), false},
		{"string", "example.com:80", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := a.Equal(c.val); got != c.want {
				t.Errorf("a.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestAuthority_Format(t *testing.T) {
	t.Parallel()

	a := uri.NewAuthority(uri.Name("example.com")).WithPort(80)
	if got, want := fmt.Sprintf("%s", a), "example.com:80"; got != want {
		t.Errorf("fmt.Sprintf(%%s) = %q, want %q", got, want)
	}
	if got, want := fmt.Sprintf("%q", a), `"example.com:80"`; got != want {
		t.Errorf("fmt.Sprintf(%%q) = %q, want %q", got, want)
	}
	if got, want := fmt.Sprintf("%v", a), "example.com:80"; got != want {
		t.Errorf("fmt.Sprintf(%%v) = %q, want %q", got, want)
	}
}
