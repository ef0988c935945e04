package qa

import (
	"strings"
	"unicode"
)

// Punctuation treated as spacing. Anything outside this set (digits, accented
// letters, slashes in command names) keeps its identity.
const questionPunctuation = `¿?!.:,;"'()-`

// Normalize prepares text for comparison: lower-case, question punctuation
// replaced by spaces, whitespace runs collapsed, ends trimmed. Pure and
// idempotent; an empty or all-punctuation input normalizes to "".
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if strings.ContainsRune(questionPunctuation, r) || unicode.IsSpace(r) {
			if !lastSpace {
				builder.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		builder.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(builder.String())
}
