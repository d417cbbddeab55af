package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy is safe for concurrent use once built.
var strictPolicy = bluemonday.StrictPolicy()

// StripHTML removes every element and attribute and returns the remaining
// text unescaped, so plain punctuation survives as typed.
func StripHTML(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// SanitizeComment strips markup from free text and trims it while keeping
// line breaks.
func SanitizeComment(comment string) string {
	return Pipeline{StripHTML, strings.TrimSpace}.Apply(comment)
}
