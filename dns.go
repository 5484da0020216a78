package checkmx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/proxy"
)

const dnsPort = "53"

// DNSResolver sends MX queries straight to the configured nameservers so
// that NXDOMAIN, an empty answer and a failing server stay distinguishable.
// Nameservers are asked in order until one of them answers
type DNSResolver struct {
	nameservers []string
	client      *dns.Client
	tcpClient   *dns.Client
	dialer      proxy.Dialer
}

// NewDNSResolver creates a resolver for the passed nameservers.
// A nameserver without a port is queried on port 53
func NewDNSResolver(nameservers ...string) *DNSResolver {
	servers := make([]string, 0, len(nameservers))
	for _, ns := range nameservers {
		if ns = strings.TrimSpace(ns); ns != "" {
			servers = append(servers, withDNSPort(ns))
		}
	}

	tcp := &dns.Client{Net: "tcp"}
	return &DNSResolver{
		nameservers: servers,
		client:      &dns.Client{Net: "udp"},
		tcpClient:   tcp,
	}
}

// NameserversFromResolvConf reads the nameservers of a resolv.conf file
func NameserversFromResolvConf(path string) ([]string, error) {
	cfg, err := dns.ClientConfigFromFile(path)
	if err != nil {
		return nil, err
	}

	servers := make([]string, len(cfg.Servers))
	for i, s := range cfg.Servers {
		servers[i] = net.JoinHostPort(s, cfg.Port)
	}
	return servers, nil
}

// Nameservers returns the host:port of every nameserver in query order
func (r *DNSResolver) Nameservers() []string {
	return append([]string(nil), r.nameservers...)
}

// UseTCP sends every query over TCP instead of UDP
func (r *DNSResolver) UseTCP() *DNSResolver {
	r.client = r.tcpClient
	return r
}

// LookupMX returns the DNS MX records for the given domain name sorted by preference.
// Every failure is a *LookupError
func (r *DNSResolver) LookupMX(ctx context.Context, name string) ([]*net.MX, error) {
	fqdn := dns.Fqdn(name)
	if _, ok := dns.IsDomainName(fqdn); !ok {
		return nil, newLookupError(KindDNS, name, fmt.Sprintf("%q is not a valid domain name", name))
	}
	if len(r.nameservers) == 0 {
		return nil, newLookupError(KindNoNameservers, name, "no nameservers configured")
	}

	m := new(dns.Msg)
	m.SetQuestion(fqdn, dns.TypeMX)

	var (
		failures []string
		timedOut bool
	)
	for _, server := range r.nameservers {
		resp, err := r.exchange(ctx, m, server)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", server, err))
			if isTimeout(err) {
				timedOut = true
			}
			if ctx.Err() != nil {
				timedOut = true
				break
			}
			continue
		}

		switch resp.Rcode {
		case dns.RcodeSuccess:
			return mxFromAnswer(resp, name)
		case dns.RcodeNameError:
			return nil, newLookupError(KindDomainNotFound, name,
				fmt.Sprintf("the DNS query name does not exist: %s", fqdn))
		default:
			failures = append(failures, fmt.Sprintf("%s answered %s", server, dns.RcodeToString[resp.Rcode]))
		}
	}

	details := strings.Join(failures, "; ")
	if timedOut {
		return nil, newLookupError(KindDNS, name, "the DNS operation timed out: "+details)
	}
	return nil, newLookupError(KindNoNameservers, name,
		fmt.Sprintf("all nameservers failed to answer %s IN MX: %s", fqdn, details))
}

func (r *DNSResolver) exchange(ctx context.Context, m *dns.Msg, server string) (*dns.Msg, error) {
	if r.dialer != nil {
		return r.exchangeViaProxy(ctx, m, server)
	}

	resp, _, err := r.client.ExchangeContext(ctx, m, server)
	if err != nil {
		return nil, err
	}

	// A truncated UDP answer is asked again over TCP
	if resp.Truncated && r.client.Net != "tcp" {
		resp, _, err = r.tcpClient.ExchangeContext(ctx, m, server)
	}
	return resp, err
}

func mxFromAnswer(resp *dns.Msg, name string) ([]*net.MX, error) {
	var mxs []*net.MX
	for _, rr := range resp.Answer {
		if mx, ok := rr.(*dns.MX); ok {
			mxs = append(mxs, &net.MX{Host: mx.Mx, Pref: mx.Preference})
		}
	}

	if len(mxs) == 0 {
		return nil, newLookupError(KindNoAnswer, name,
			fmt.Sprintf("the DNS response does not contain an answer to %s IN MX", dns.Fqdn(name)))
	}

	sort.SliceStable(mxs, func(i, j int) bool {
		return mxs[i].Pref < mxs[j].Pref
	})
	return mxs, nil
}

func withDNSPort(ns string) string {
	if _, _, err := net.SplitHostPort(ns); err == nil {
		return ns
	}
	return net.JoinHostPort(strings.Trim(ns, "[]"), dnsPort)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
