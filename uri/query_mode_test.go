package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uriparse/uri"
)

func TestParseQueryMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    uri.QueryMode
		wantErr error
	}{
		{"", uri.ModeDuplicateLast, nil},
		{"last", uri.ModeDuplicateLast, nil},
		{"colon", uri.ModeDuplicateColon, nil},
		{"Array", uri.ModeDuplicateArray, nil},
		{"array|semicolon", uri.ModeDuplicateArray | uri.ModeSemicolonDelimiter, nil},
		{"last, semicolon", uri.ModeSemicolonDelimiter, nil},
		{"6", uri.ModeDuplicateArray | uri.ModeSemicolonDelimiter, nil},
		{"8", 0, uri.ErrUnsupportedMode},
		{"comma", 0, uri.ErrUnsupportedMode},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ParseQueryMode(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.ParseQueryMode(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("uri.ParseQueryMode(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestQueryMode_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mode uri.QueryMode
		want string
	}{
		{uri.ModeDuplicateLast, "last"},
		{uri.ModeDuplicateColon, "colon"},
		{uri.ModeDuplicateArray | uri.ModeSemicolonDelimiter, "array|semicolon"},
		{uri.ModeSemicolonDelimiter, "last|semicolon"},
		{uri.ModeDuplicateArray | 16, "array|0x10"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			t.Parallel()

			if got := c.mode.String(); got != c.want {
				t.Errorf("mode.String() = %q, want %q", got, c.want)
			}
			if c.mode.Validate() != nil {
				return
			}
			back, err := uri.ParseQueryMode(c.want)
			if err != nil || back != c.mode {
				t.Errorf("uri.ParseQueryMode(%q) = (%v, %v), want (%v, nil)", c.want, back, err, c.mode)
			}
		})
	}
}

func TestQueryMode_Validate(t *testing.T) {
	t.Parallel()

	for m := uri.QueryMode(0); m < 8; m++ {
		if err := m.Validate(); err != nil {
			t.Errorf("QueryMode(%d).Validate() = %v, want nil", m, err)
		}
	}
	if err := uri.QueryMode(3 | 8).Validate(); !cmp.Equal(err, uri.ErrUnsupportedMode, cmpopts.EquateErrors()) {
		t.Errorf("QueryMode(11).Validate() = %v, want %v", err, uri.ErrUnsupportedMode)
	}
}

func TestQueryMode_UnmarshalText(t *testing.T) {
	t.Parallel()

	var m uri.QueryMode
	if err := m.UnmarshalText([]byte("colon|semicolon")); err != nil {
		t.Fatalf("m.UnmarshalText() error = %v, want nil", err)
	}
	if want := uri.ModeDuplicateColon | uri.ModeSemicolonDelimiter; m != want {
		t.Errorf("m = %v, want %v", m, want)
	}
	if _, err := uri.QueryMode(32).MarshalText(); err == nil {
		t.Errorf("QueryMode(32).MarshalText() error = nil, want error")
	}
}
