package grammar

// IsDigit checks DIGIT rule.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsAlpha checks ALPHA rule.
func IsAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

// IsAlphanum checks alphanum rule.
func IsAlphanum(c byte) bool { return IsAlpha(c) || IsDigit(c) }

// IsHexDigit checks HEXDIG rule.
func IsHexDigit(c byte) bool {
	return IsDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// IsUnreserved checks unreserved rule.
func IsUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphanum(c)
}

// IsSubDelim checks sub-delims rule.
func IsSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// IsGenDelim checks gen-delims rule.
func IsGenDelim(c byte) bool {
	switch c {
	case ':', '/', '?', '#', '[', ']', '@':
		return true
	}
	return false
}

// IsRegNameChar checks reg-name rule, pct-encoded triplets excluded.
func IsRegNameChar(c byte) bool { return IsUnreserved(c) || IsSubDelim(c) }

// IsUserInfoChar checks userinfo rule, pct-encoded triplets excluded.
func IsUserInfoChar(c byte) bool { return IsRegNameChar(c) || c == ':' }

// IsPChar checks pchar rule, pct-encoded triplets excluded.
func IsPChar(c byte) bool { return IsUserInfoChar(c) || c == '@' }

// IsQueryChar checks query and fragment rules, pct-encoded triplets excluded.
func IsQueryChar(c byte) bool { return IsPChar(c) || c == '/' || c == '?' }

// IsHostChar reports whether c may appear in the host part of an authority:
// reg-name characters plus the IP-literal delimiters.
func IsHostChar(c byte) bool { return IsRegNameChar(c) || c == ':' || c == '[' || c == ']' }

// IsSegmentSafe reports whether c may appear unescaped in a stored path segment.
// Only the delimiters that end a segment or the whole path are refused,
// everything else is escaped on rendering.
func IsSegmentSafe(c byte) bool { return c != '/' && c != '?' && c != '#' }

// IsSchemeChar checks the characters after the first ALPHA of the scheme rule.
func IsSchemeChar(c byte) bool { return IsAlphanum(c) || c == '+' || c == '.' || c == '-' }

// IsScheme checks scheme rule: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func IsScheme(s string) bool {
	if s == "" || !IsAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsSchemeChar(s[i]) {
			return false
		}
	}
	return true
}
