// Package resolver provides a DNS resolver using an optional
// custom DNS server address.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/miekg/dns"
)

type Resolver struct {
	netResolver *net.Resolver
	dnsClient   *dns.Client
	address     string
}

func New(settings Settings) (resolver *Resolver, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	resolver = &Resolver{
		netResolver: net.DefaultResolver,
		address:     *settings.Address,
	}

	if *settings.Address != "" {
		dialer := net.Dialer{Timeout: settings.Timeout}
		resolver.netResolver = &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
				const protocol = "udp"
				return dialer.DialContext(ctx, protocol, *settings.Address)
			},
		}
		resolver.dnsClient = &dns.Client{Timeout: settings.Timeout}
	}

	return resolver, nil
}

func (r *Resolver) LookupIP(ctx context.Context, network, host string) (
	ips []net.IP, err error) {
	return r.netResolver.LookupIP(ctx, network, host)
}

var (
	ErrDNSRcodeNotSuccess = errors.New("DNS response code is not success")
	ErrDNSNoAnswer        = errors.New("DNS response has no answer")
)

// CheckServer verifies the configured DNS server answers an A
// question for the host given. It is a no-op when no custom
// DNS server address is set.
func (r *Resolver) CheckServer(ctx context.Context, host string) (err error) {
	if r.dnsClient == nil {
		return nil
	}

	message := new(dns.Msg)
	message.SetQuestion(dns.Fqdn(host), dns.TypeA)

	response, _, err := r.dnsClient.ExchangeContext(ctx, message, r.address)
	if err != nil {
		return fmt.Errorf("exchanging DNS message with %s: %w", r.address, err)
	}

	if response.Rcode != dns.RcodeSuccess {
		return fmt.Errorf("%w: %s from %s",
			ErrDNSRcodeNotSuccess, dns.RcodeToString[response.Rcode], r.address)
	} else if len(response.Answer) == 0 {
		return fmt.Errorf("%w: for host %s from %s",
			ErrDNSNoAnswer, host, r.address)
	}

	return nil
}
