package stringx

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleConfig holds configuration options for ToTitleCase.
type titleConfig struct {
	tag language.Tag
}

// TitleOption defines a functional option used to configure ToTitleCase.
type TitleOption func(*titleConfig)

// WithLanguage sets the language whose casing rules are applied, for example
// language.Turkish to map "i" to "İ". By default, it uses language.Und.
func WithLanguage(tag language.Tag) TitleOption {
	return func(c *titleConfig) {
		c.tag = tag
	}
}

// ToTitleCase upper-cases the first rune of every word and lower-cases the
// rest. Words are separated by a single space character; runs of spaces are
// kept exactly as they are.
//
// Example usage:
//
//	stringx.ToTitleCase("hello wORLD") // "Hello World"
func ToTitleCase(value string, opts ...TitleOption) string {
	if value == "" {
		return value
	}

	c := &titleConfig{
		tag: language.Und,
	}

	for _, opt := range opts {
		opt(c)
	}

	// casers carry state and are not safe for concurrent use
	upper := cases.Upper(c.tag)
	lower := cases.Lower(c.tag)

	words := strings.Split(value, " ")
	for i, word := range words {
		if word == "" {
			continue
		}

		_, size := utf8.DecodeRuneInString(word)
		words[i] = upper.String(word[:size]) + lower.String(word[size:])
	}

	return strings.Join(words, " ")
}
