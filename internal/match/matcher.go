// Package match builds the word-anchored, case-insensitive matchers used by
// the text search and tag filters.
package match

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Mode selects how the end of the needle is anchored.
type Mode int

const (
	// Prefix matches the needle at the start of a word; the word may continue.
	Prefix Mode = iota
	// WholeWord matches the needle only as a complete word.
	WholeWord
)

func (m Mode) String() string {
	if m == WholeWord {
		return "whole-word"
	}
	return "prefix"
}

// ValidationError reports a needle that could not be turned into a matcher.
type ValidationError struct {
	Needle string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid needle %q: %v", e.Needle, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Matcher tests haystacks against one needle. A nil Matcher matches nothing.
type Matcher struct {
	needle string
	mode   Mode
	re     *regexp.Regexp
}

// Build returns a matcher for needle. Pattern metacharacters in needle are
// matched literally. An empty needle matches at every word boundary.
func Build(needle string, wholeWord bool) (*Matcher, error) {
	mode := Prefix
	if wholeWord {
		mode = WholeWord
	}
	return compile(needle, regexp.QuoteMeta(needle), mode)
}

func compile(needle, pattern string, mode Mode) (*Matcher, error) {
	expr := `(?i)` + boundaryBefore(needle) + `(?:` + pattern + `)`
	if mode == WholeWord {
		expr += boundaryAfter(needle)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.WithStack(&ValidationError{Needle: needle, Err: err})
	}
	return &Matcher{needle: needle, mode: mode, re: re}, nil
}

// RE2's \b only knows ASCII word characters, which would leave "Œuf" or
// "Straße" without a boundary. The anchors below treat every Unicode letter
// and number as a word character instead, and only assert on a side where
// the needle's edge rune is itself a word character: "30%" or "½ citron"
// must still be found inside "Crème fraîche 30%,½ citron".
const nonWordChar = `[^\p{L}\p{N}_]`

func boundaryBefore(needle string) string {
	if needle == "" {
		return `\b`
	}
	if r, _ := utf8.DecodeRuneInString(needle); isWordRune(r) {
		return `(?:^|` + nonWordChar + `)`
	}
	return ""
}

func boundaryAfter(needle string) string {
	if needle == "" {
		return `\b`
	}
	if r, _ := utf8.DecodeLastRuneInString(needle); isWordRune(r) {
		return `(?:$|` + nonWordChar + `)`
	}
	return ""
}

// isWordRune mirrors the [\p{L}\p{N}_] class.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Test reports whether haystack contains the needle under the matcher's mode.
func (m *Matcher) Test(haystack string) bool {
	if m == nil || m.re == nil {
		return false
	}
	return m.re.MatchString(haystack)
}

// Needle returns the text the matcher was built from.
func (m *Matcher) Needle() string {
	if m == nil {
		return ""
	}
	return m.needle
}

// Mode returns the anchoring mode.
func (m *Matcher) Mode() Mode {
	if m == nil {
		return Prefix
	}
	return m.mode
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
