package errorutil

import "errors"

// IsGrammarErr returns true if the error is a grammar error,
// i.e. the input did not conform to the URI grammar.
func IsGrammarErr(err error) bool {
	var e interface{ Grammar() bool }
	return errors.As(err, &e) && e.Grammar()
}
