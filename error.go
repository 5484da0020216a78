package checkmx

import (
	"errors"
	"net"
	"strings"
)

const (
	// Standard statuses
	StatusValid         = "valid domain"
	StatusMissingMX     = "missing/invalid MX records"
	StatusNoSuchDomain  = "domain does not exist"
	StatusNoNameservers = "missing/invalid MX records (no DNS servers)"
	StatusInvalidFormat = "invalid email format"

	// Catch-all prefixes, followed by the underlying error message
	StatusDNSErrorPrefix = "DNS error: "
	StatusUnknownPrefix  = "unknown error: "
)

// ErrKind tells apart the failures of an MX lookup
type ErrKind int

const (
	KindUnknown        ErrKind = iota // not a DNS failure
	KindDomainNotFound                // NXDOMAIN
	KindNoAnswer                      // the name exists but has no MX records
	KindNoNameservers                 // no server was available to answer
	KindDNS                           // any other DNS failure
)

func (k ErrKind) String() string {
	switch k {
	case KindDomainNotFound:
		return "domain_not_found"
	case KindNoAnswer:
		return "no_answer"
	case KindNoNameservers:
		return "no_nameservers"
	case KindDNS:
		return "dns"
	default:
		return "unknown"
	}
}

// LookupError is an MX dns records lookup error
type LookupError struct {
	Kind    ErrKind `json:"kind"`
	Domain  string  `json:"domain"`
	Details string  `json:"details"`
}

// newLookupError creates a new LookupError reference and returns it
func newLookupError(kind ErrKind, domain, details string) *LookupError {
	return &LookupError{kind, domain, details}
}

func (e *LookupError) Error() string {
	return e.Details
}

// KindOf classifies err by the kind of lookup failure it carries.
// Errors of the Go resolver are recognised too
func KindOf(err error) ErrKind {
	if err == nil {
		return KindUnknown
	}

	var le *LookupError
	if errors.As(err, &le) {
		return le.Kind
	}

	var de *net.DNSError
	if errors.As(err, &de) {
		switch {
		case de.IsNotFound:
			return KindDomainNotFound
		// The Go resolver reports SERVFAIL and REFUSED from every server this way
		case insContains(de.Err, "server misbehaving"):
			return KindNoNameservers
		default:
			return KindDNS
		}
	}

	return KindUnknown
}

// insContains returns true if any of the substrings
// are found in the passed string. This method of checking
// contains is case insensitive
func insContains(str string, subStrs ...string) bool {
	for _, subStr := range subStrs {
		if strings.Contains(strings.ToLower(str),
			strings.ToLower(subStr)) {
			return true
		}
	}
	return false
}
