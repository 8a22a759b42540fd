package uri_test

import (
	"net/netip"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uriparse/uri"
)

func TestParseIPv4(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    netip.Addr
		wantErr error
	}{
		{"192.0.2.1", netip.MustParseAddr("192.0.2.1"), nil},
		{"0.0.0.0", netip.MustParseAddr("0.0.0.0"), nil},
		{"::1", netip.Addr{}, uri.ErrMalformedAuthority},
		{"256.0.0.1", netip.Addr{}, uri.ErrMalformedAuthority},
		{"", netip.Addr{}, uri.ErrMalformedAuthority},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ParseIPv4(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.ParseIPv4(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if got.Addr() != c.want {
				t.Errorf("uri.ParseIPv4(%q) = %v, want %v", c.in, got.Addr(), c.want)
			}
		})
	}
}

func TestParseIPv6(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"::1", "::1", nil},
		{"2001:DB8::1", "2001:db8::1", nil},
		{"::ffff:192.0.2.1", "::ffff:192.0.2.1", nil},
		{"192.0.2.1", "", uri.ErrMalformedAuthority},
		{"fe80::1%eth0", "", uri.ErrMalformedAuthority},
		{"1:2:3", "", uri.ErrMalformedAuthority},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ParseIPv6(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.ParseIPv6(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if err != nil {
				return
			}
			if got.String() != c.want {
				t.Errorf("uri.ParseIPv6(%q) = %q, want %q", c.in, got.String(), c.want)
			}
			if got.Kind() != uri.HostIPv6 {
				t.Errorf("uri.ParseIPv6(%q).Kind() = %v, want %v", c.in, got.Kind(), uri.HostIPv6)
			}
		})
	}
}

func TestParseName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    uri.Name
		wantErr error
	}{
		{"empty", "", "", nil},
		{"simple", "example.com", "example.com", nil},
		{"fqdn", "example.com.", "example.com.", nil},
		{"escaped", "b%C3%BCcher.example", "b%C3%BCcher.example", nil},
		{"sub-delims", "a!b$c", "a!b$c", nil},
		{"space", "exa mple.com", "", uri.ErrMalformedAuthority},
		{"bad triplet", "exa%zzmple", "", uri.ErrMalformedAuthority},
		{"empty label", "a..b", "a..b", nil},
		{"leading dot", ".example", ".example", nil},
		{"long label", strings.Repeat("a", 64) + ".com", uri.Name(strings.Repeat("a", 64) + ".com"), nil},
		{"escaped backslash", "%5C", "%5C", nil},
		{"escaped backslash and digit", "%5C0", "%5C0", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ParseName(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.ParseName(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("uri.ParseName(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestName_IsDomain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   uri.Name
		want bool
	}{
		{"", false},
		{"example.com", true},
		{"example.com.", true},
		{"localhost", true},
		{"b%C3%BCcher.example", true},
		{"a..b", false},
		{".example", false},
		{uri.Name(strings.Repeat("a", 63) + ".com"), true},
		{uri.Name(strings.Repeat("a", 64) + ".com"), false},
		{uri.Name(strings.Repeat("abc.", 75)), false},
		{"%5C", true},
		{"%5C0", true},
	}

	for _, c := range cases {
		if got := c.in.IsDomain(); got != c.want {
			t.Errorf("uri.Name(%q).IsDomain() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestName_IDNA(t *testing.T) {
	t.Parallel()

	ascii, err := uri.Name("b%C3%BCcher.example").ASCII()
	if err != nil {
		t.Fatalf("Name.ASCII() error = %v, want nil", err)
	}
	if want := "xn--bcher-kva.example"; ascii != want {
		t.Errorf("Name.ASCII() = %q, want %q", ascii, want)
	}

	uni, err := uri.Name("xn--bcher-kva.example").Unicode()
	if err != nil {
		t.Fatalf("Name.Unicode() error = %v, want nil", err)
	}
	if want := "bücher.example"; uni != want {
		t.Errorf("Name.Unicode() = %q, want %q", uni, want)
	}
}

func TestHost_Equal(t *testing.T) {
	t.Parallel()

	ip4, _ := uri.ParseIPv4("192.0.2.1")
	ip6, _ := uri.ParseIPv6("::1")
	cases := []struct {
		name string
		host uri.Host
		val  any
		want bool
	}{
		{"name case", uri.Name("Example.COM"), uri.Name("example.com"), true},
		{"name ptr", uri.Name("a"), new(uri.Name), false},
		{"name vs string", uri.Name("a"), "a", false},
		{"ipv4", ip4, ip4, true},
		{"ipv4 ptr", ip4, &ip4, true},
		{"ipv4 vs ipv6", ip4, ip6, false},
		{"ipv6", ip6, ip6, true},
		{"ipv6 nil ptr", ip6, (*uri.IPv6)(nil), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.host.Equal(c.val); got != c.want {
				t.Errorf("host.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}
