package stringx

import (
	"strings"
	"unicode"
)

// RemoveWhitespace returns value with every Unicode whitespace rune removed.
func RemoveWhitespace(value string) string {
	if value == "" {
		return value
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}
