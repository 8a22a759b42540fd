package uri

import "github.com/ghettovoice/uriparse/internal/errorutil"

// Error is a parse error sentinel.
// Returned errors wrap one of the constants below, test them with [errors.Is].
type Error string

func (e Error) Error() string { return string(e) }

// Grammar reports that the error comes from input not conforming to the URI grammar.
func (Error) Grammar() bool { return true }

const (
	// ErrMissingScheme is returned when the input has no registered scheme token
	// and no default scheme was supplied.
	ErrMissingScheme Error = "missing scheme"
	// ErrMalformedURI is returned when the input does not fit the URI structure at all.
	ErrMalformedURI Error = "malformed URI"
	// ErrMalformedAuthority is returned when the authority does not match the authority grammar.
	ErrMalformedAuthority Error = "malformed authority"
	// ErrInvalidSegment is returned when a path segment contains "/", "?" or "#".
	ErrInvalidSegment Error = "invalid path segment"
	// ErrUnsupportedMode is returned for query modes with unknown bits.
	ErrUnsupportedMode Error = "unsupported query mode"
)

// IsGrammarErr reports whether err, or any error it wraps, is a grammar error,
// i.e. the input did not conform to the URI grammar.
func IsGrammarErr(err error) bool { return errorutil.IsGrammarErr(err) }

func newMissingSchemeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMissingScheme, args...) //errtrace:skip
}

func newMalformedURIErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedURI, args...) //errtrace:skip
}

func newMalformedAuthorityErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedAuthority, args...) //errtrace:skip
}

func newInvalidSegmentErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidSegment, args...) //errtrace:skip
}

func newUnsupportedModeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrUnsupportedMode, args...) //errtrace:skip
}
