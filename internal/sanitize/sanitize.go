// Package sanitize cleans free-form user text before it is placed inside a
// model prompt.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"icona/internal/domain"
)

// Field limits, counted in runes.
const (
	MaxRefinementLength        = 1000
	MinRefinementLength        = 3
	MaxManualEraTextLength     = 2000
	MaxAdditionalDetailsLength = 500
)

var ErrRefinementTooShort = fmt.Errorf("%w: refinement prompt must be at least %d characters", domain.ErrInvalidPrompt, MinRefinementLength)

var disallowed = regexp.MustCompile(`[^\w\s\p{Zs}.,!?\-'":;()\[\]{}]`)

// Text normalizes s to NFKC, removes control characters and anything outside
// the allow-set, trims it and cuts it to max runes. Text(Text(s, n), n) equals
// Text(s, n). A max of zero or less disables truncation.
func Text(s string, max int) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	s = strings.Map(func(r rune) rune {
		// C0, DEL and C1
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	s = disallowed.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if max > 0 && utf8.RuneCountInString(s) > max {
		s = truncate(s, max)
		s = strings.TrimSpace(s)
	}
	return s
}

func truncate(s string, max int) string {
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

// RefinementInstruction cleans a refinement request and rejects results
// shorter than MinRefinementLength.
func RefinementInstruction(s string) (string, error) {
	out := Text(s, MaxRefinementLength)
	if utf8.RuneCountInString(out) < MinRefinementLength {
		return "", ErrRefinementTooShort
	}
	return out, nil
}

func ManualEraText(s string) string {
	return Text(s, MaxManualEraTextLength)
}

func AdditionalDetails(s string) string {
	return Text(s, MaxAdditionalDetailsLength)
}
