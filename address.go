package checkmx

import (
	"regexp"
	"strings"
)

// emailRegex accepts a non-empty local part, a single @ and a domain with at least one dot
var emailRegex = regexp.MustCompile(`^[^@]+@([^@]+\.[^@]+)$`)

// ExtractDomain returns the lower-cased domain of the passed email address.
// ok is false when the address does not have the local@domain.tld shape
func ExtractDomain(email string) (domain string, ok bool) {
	m := emailRegex.FindStringSubmatch(strings.TrimSpace(email))
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}
