package checkmx

import (
	"context"
	"net"
)

// Resolver looks up the MX records of a domain.
// *net.Resolver satisfies it, and so does *DNSResolver
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

var (
	_ Resolver = (*net.Resolver)(nil)
	_ Resolver = (*DNSResolver)(nil)
)
