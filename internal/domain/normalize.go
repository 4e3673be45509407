package domain

import (
	"strings"
	"unicode"
)

// CollapseSpace prepares free text for storage:
//   - trims leading/trailing whitespace
//   - replaces every run of inner whitespace with a single space
//
// Case, diacritics and punctuation are preserved.
func CollapseSpace(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			r = ' '
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
