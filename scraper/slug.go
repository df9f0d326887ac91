package scraper

import (
	"regexp"
	"strings"
)

var (
	slugReplacer   = strings.NewReplacer("(", "", ")", "", "/", "-", " ", "-", "&", "and")
	slugDisallowed = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a canonical identifier from a free-text train name or
// number: lower-case, parentheses stripped, slashes and spaces hyphenated,
// ampersands spelled out, everything outside [a-z0-9-] dropped, hyphen runs
// collapsed and trimmed. Total and idempotent; the empty string is a valid
// result.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugReplacer.Replace(s)
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
