package utils

import "regexp"

// emailPattern is deliberately loose: one @, no spaces, a dot in the domain.
// Real validation happens when mail is actually sent.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
