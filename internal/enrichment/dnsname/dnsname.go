// Package dnsname resolves node addresses to hostnames via reverse DNS.
// With a resolver address configured it queries that server directly;
// otherwise it falls back to the system resolver stack.
package dnsname

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/miekg/dns"
)

type Resolver struct {
	// Server is "host:port" of a DNS server to query directly. Empty means
	// use the system resolver.
	Server string

	client *dns.Client
}

func NewResolver(server string) *Resolver {
	return &Resolver{Server: server, client: new(dns.Client)}
}

// LookupAddr returns the first PTR name for the address, without the
// trailing dot. A NXDOMAIN or empty answer returns ("", nil); the caller
// treats no name as a non-event.
func (r *Resolver) LookupAddr(ctx context.Context, address string) (string, error) {
	if r.Server == "" {
		return r.lookupSystem(ctx, address)
	}

	arpa, err := dns.ReverseAddr(address)
	if err != nil {
		return "", err
	}

	msg := new(dns.Msg)
	msg.SetQuestion(arpa, dns.TypePTR)

	resp, _, err := r.client.ExchangeContext(ctx, msg, r.Server)
	if err != nil {
		return "", err
	}
	if resp.Rcode != dns.RcodeSuccess {
		return "", nil
	}
	for _, rr := range resp.Answer {
		if ptr, ok := rr.(*dns.PTR); ok {
			return strings.TrimSuffix(ptr.Ptr, "."), nil
		}
	}
	return "", nil
}

func (r *Resolver) lookupSystem(ctx context.Context, address string) (string, error) {
	names, err := net.DefaultResolver.LookupAddr(ctx, address)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return "", nil
		}
		return "", err
	}
	for _, raw := range names {
		if name := strings.TrimSuffix(strings.TrimSpace(raw), "."); name != "" {
			return name, nil
		}
	}
	return "", nil
}
