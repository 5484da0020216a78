package checkmx

import (
	"context"
	"net"
)

// Mx is detail about the Mx host
type Mx struct {
	HasMXRecord bool      // whether has 1 or more MX record
	Records     []*net.MX // represent DNS MX records
}

// CheckMX will return the DNS MX records for the given domain name sorted by preference.
func (v *Verifier) CheckMX(ctx context.Context, domain string) (*Mx, error) {
	domain = DomainToASCII(domain)

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	mx, err := v.mxResolver.LookupMX(ctx, domain)
	if err != nil && len(mx) == 0 {
		return nil, err
	}
	return &Mx{
		HasMXRecord: len(mx) > 0,
		Records:     mx,
	}, nil
}

// Status maps the outcome of CheckMX to one of the report statuses.
// Only the catch-all statuses carry the error message
func Status(mx *Mx, err error) string {
	if err != nil {
		switch KindOf(err) {
		case KindDomainNotFound:
			return StatusNoSuchDomain
		case KindNoAnswer:
			return StatusMissingMX
		case KindNoNameservers:
			return StatusNoNameservers
		case KindDNS:
			return StatusDNSErrorPrefix + err.Error()
		default:
			return StatusUnknownPrefix + err.Error()
		}
	}

	if mx == nil || !mx.HasMXRecord {
		return StatusMissingMX
	}
	return StatusValid
}
