// Package stringx provides small, allocation-light helpers for everyday
// string handling: truncating with an ellipsis, title-casing words,
// checking the format of an email address and stripping whitespace.
//
// Every function is safe for concurrent use, never panics and never returns
// an error. Empty input is always returned unchanged. Lengths are counted in
// runes, so multi-byte characters are never split.
package stringx
