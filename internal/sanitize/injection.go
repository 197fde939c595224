package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const unsafeReason = "Prompt contains potentially unsafe instructions"

var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(previous|all|above|instructions?)`),
	regexp.MustCompile(`(?i)forget\s+(previous|all|above|instructions?)`),
	regexp.MustCompile(`(?i)system\s*:?\s*you\s+are`),
	regexp.MustCompile(`(?i)assistant\s*:?\s*you\s+are`),
	regexp.MustCompile(`(?i)you\s+must\s+(not|never)`),
	regexp.MustCompile(`(?i)override`),
	regexp.MustCompile(`(?i)bypass`),
}

// Verdict is the outcome of DetectInjection. Pattern is the expression that
// matched, empty when Safe.
type Verdict struct {
	Safe    bool   `json:"safe"`
	Reason  string `json:"reason,omitempty"`
	Pattern string `json:"-"`
}

// DetectInjection reports whether s contains phrasing commonly used to
// hijack a model's instructions. Control characters and symbols that Text
// would strip count as word separators. It only classifies; callers decide
// policy.
func DetectInjection(s string) Verdict {
	s = screenView(s)
	for _, re := range injectionPatterns {
		if re.MatchString(s) {
			return Verdict{Safe: false, Reason: unsafeReason, Pattern: re.String()}
		}
	}
	return Verdict{Safe: true}
}

func screenView(s string) string {
	s = norm.NFKC.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return disallowed.ReplaceAllString(s, " ")
}

// Policy decides what happens when DetectInjection flags input.
type Policy string

const (
	PolicyWarn  Policy = "warn"
	PolicyBlock Policy = "block"
)

// ParsePolicy falls back to PolicyWarn for unknown values.
func ParsePolicy(raw string) Policy {
	if Policy(strings.ToLower(strings.TrimSpace(raw))) == PolicyBlock {
		return PolicyBlock
	}
	return PolicyWarn
}
