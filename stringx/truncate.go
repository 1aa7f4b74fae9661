package stringx

import "unicode/utf8"

// DefaultEllipsis is appended by Truncate when no WithEllipsis option is given.
const DefaultEllipsis = "..."

// truncateConfig holds configuration options for Truncate.
type truncateConfig struct {
	ellipsis string
}

// TruncateOption defines a functional option used to configure Truncate.
type TruncateOption func(*truncateConfig)

// WithEllipsis sets the marker appended to a truncated value.
// By default, it uses DefaultEllipsis.
func WithEllipsis(ellipsis string) TruncateOption {
	return func(c *truncateConfig) {
		c.ellipsis = ellipsis
	}
}

// Truncate shortens value to at most maxLength runes. When value is longer
// than maxLength, the result is the first maxLength-len(ellipsis) runes of
// value followed by the ellipsis, so that the result is exactly maxLength
// runes long.
//
// If maxLength is smaller than the ellipsis itself, no content is kept and
// the ellipsis alone is returned.
//
// Example usage:
//
//	stringx.Truncate("Hello World", 8)                         // "Hello..."
//	stringx.Truncate("Hello World", 6, stringx.WithEllipsis("…")) // "Hello…"
func Truncate(value string, maxLength int, opts ...TruncateOption) string {
	if value == "" || utf8.RuneCountInString(value) <= maxLength {
		return value
	}

	c := &truncateConfig{
		ellipsis: DefaultEllipsis,
	}

	for _, opt := range opts {
		opt(c)
	}

	keep := max(maxLength-utf8.RuneCountInString(c.ellipsis), 0)

	return string([]rune(value)[:keep]) + c.ellipsis
}
