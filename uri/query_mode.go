package uri

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparse/internal/util"
)

// QueryMode selects how repeated query parameter names are handled.
// The zero value is [ModeDuplicateLast].
type QueryMode uint

const (
	// ModeDuplicateLast keeps the last value of a repeated name.
	ModeDuplicateLast QueryMode = 0
	// ModeDuplicateColon joins repeated values with ",".
	// The separator is a comma despite the name.
	ModeDuplicateColon QueryMode = 1
	// ModeDuplicateArray merges repeated values into an [Array]
	// and decodes bracketed names like "a[]" or "a[key]" into nested arrays.
	// It takes precedence over ModeDuplicateColon.
	ModeDuplicateArray QueryMode = 2
	// ModeSemicolonDelimiter accepts ";" as a pair delimiter besides "&".
	// It only affects the last-value mode.
	ModeSemicolonDelimiter QueryMode = 4

	modeMask = ModeDuplicateColon | ModeDuplicateArray | ModeSemicolonDelimiter
)

var modeNames = []struct {
	mode QueryMode
	name string
}{
	{ModeDuplicateColon, "colon"},
	{ModeDuplicateArray, "array"},
	{ModeSemicolonDelimiter, "semicolon"},
}

// Validate returns [ErrUnsupportedMode] if the mode has unknown bits.
func (m QueryMode) Validate() error {
	if m&^modeMask != 0 {
		return errtrace.Wrap(newUnsupportedModeErr("%d", uint(m)))
	}
	return nil
}

func (m QueryMode) usesPattern() bool { return m&(ModeDuplicateColon|ModeDuplicateArray) != 0 }

// String returns names of the set bits joined with "|", e.g. "array|semicolon".
func (m QueryMode) String() string {
	if m == ModeDuplicateLast {
		return "last"
	}
	var parts []string
	for _, mn := range modeNames {
		if m&mn.mode != 0 {
			parts = append(parts, mn.name)
		}
	}
	if rest := m &^ modeMask; rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	if m&(ModeDuplicateColon|ModeDuplicateArray) == 0 {
		parts = append([]string{"last"}, parts...)
	}
	return strings.Join(parts, "|")
}

// ParseQueryMode parses a mode given as names joined with "|" or ",",
// e.g. "array|semicolon", or as a decimal bit mask.
func ParseQueryMode(s string) (QueryMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModeDuplicateLast, nil
	}
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		m := QueryMode(n)
		if err := m.Validate(); err != nil {
			return 0, errtrace.Wrap(err)
		}
		return m, nil
	}

	var m QueryMode
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		tok = util.LCase(strings.TrimSpace(tok))
		if tok == "last" {
			continue
		}
		found := false
		for _, mn := range modeNames {
			if mn.name == tok {
				m |= mn.mode
				found = true
				break
			}
		}
		if !found {
			return 0, errtrace.Wrap(newUnsupportedModeErr("%q", tok))
		}
	}
	return m, nil
}

// MarshalText implements [encoding.TextMarshaler].
func (m QueryMode) MarshalText() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *QueryMode) UnmarshalText(text []byte) error {
	m1, err := ParseQueryMode(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*m = m1
	return nil
}
