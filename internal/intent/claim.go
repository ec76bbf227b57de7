package intent

import (
	"regexp"
	"strings"
)

// ClaimPatterns strip conversational framing from myth-checking questions.
// They are tried in order and the first match wins.
var ClaimPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)is it true that (.+)`),
	regexp.MustCompile(`(?i)does (.+)`),
	regexp.MustCompile(`(?i)do (.+?) really`),
	regexp.MustCompile(`(?i)is (.+?) healthy`),
	regexp.MustCompile(`(?i)is (.+?) bad`),
	regexp.MustCompile(`(?i)can (.+?) make you`),
}

// ExtractClaim returns the bare claim inside a myth-checking question, or
// false when no template applies.
func ExtractClaim(text string) (string, bool) {
	for _, re := range ClaimPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		claim := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[1]), "?!."))
		if claim == "" {
			continue
		}
		return strings.ToLower(claim), true
	}
	return "", false
}
