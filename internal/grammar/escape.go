package grammar

import (
	"bytes"

	"github.com/ghettovoice/uriparse/internal/constraints"
)

// Unescape converts each "%" HEXDIG HEXDIG triplet of s into the decoded byte.
// Malformed triplets are kept as is.
func Unescape[T constraints.Byteseq](s T) T {
	return unescape(s, false)
}

// FormUnescape is like [Unescape], but also decodes "+" as a space,
// as application/x-www-form-urlencoded values do.
func FormUnescape[T constraints.Byteseq](s T) T {
	return unescape(s, true)
}

func unescape[T constraints.Byteseq](s T, form bool) T {
	if len(s) == 0 {
		return s
	}
	if !needsUnescape(s, form) {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && IsHexDigit(s[i+1]) && IsHexDigit(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		case form && s[i] == '+':
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

func needsUnescape[T constraints.Byteseq](s T, form bool) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '%' || form && s[i] == '+' {
			return true
		}
	}
	return false
}

// Escape replaces each byte matched by shouldEscape with its "%" HEXDIG HEXDIG form.
// Valid triplets already present in s are kept, so escaping is idempotent.
// A nil shouldEscape escapes everything except unreserved characters.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsUnreserved(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && IsHexDigit(s[i+1]) && IsHexDigit(s[i+2]):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// EscapeAll is like [Escape], but also escapes "%" itself.
// It is meant for decoded values whose "%" bytes carry no escaping meaning.
func EscapeAll[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' || shouldEscape(s[i]) {
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
