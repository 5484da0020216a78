package checkmx

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	records := &Mx{HasMXRecord: true, Records: []*net.MX{{Host: "mx.example.com.", Pref: 10}}}

	cases := []struct {
		name   string
		mx     *Mx
		err    error
		status string
	}{
		{"records", records, nil, StatusValid},
		{"zero records", &Mx{}, nil, StatusMissingMX},
		{"nil result", nil, nil, StatusMissingMX},
		{"nxdomain", nil, newLookupError(KindDomainNotFound, "x.invalid", "nx"), StatusNoSuchDomain},
		{"no answer", nil, newLookupError(KindNoAnswer, "example.com", "no answer"), StatusMissingMX},
		{"no nameservers", nil, newLookupError(KindNoNameservers, "example.com", "all failed"), StatusNoNameservers},
		{"dns error", nil, newLookupError(KindDNS, "example.com", "the DNS operation timed out"), "DNS error: the DNS operation timed out"},
		{"unknown error", nil, errors.New("something broke"), "unknown error: something broke"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.status, Status(c.mx, c.err))
		})
	}
}
