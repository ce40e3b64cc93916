package sanitization

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes HTML tag markup from a string. Tags are removed, not
// escaped, so "<b>Al</b>" becomes "Al".
func StripTags(input string) string {
	return tagPattern.ReplaceAllString(input, "")
}

// Clean strips HTML tag markup and trims surrounding whitespace
func Clean(input string) string {
	return strings.TrimSpace(StripTags(input))
}
