package stringx

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether email is a bare RFC 5322 address such as
// "user@example.com". Input that only parses after normalization, like
// "Bob <user@example.com>" or "<user@example.com>", is rejected.
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	return addr.Address == email
}
