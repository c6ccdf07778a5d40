// Package verify checks a hostname resolves to the IP address
// it was just updated to.
package verify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Client

type Client interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, a string) (r *dns.Msg, rtt time.Duration, err error)
}

type Checker struct {
	client  Client
	address string
}

// New creates a checker querying the DNS server at address
// over UDP, for example 1.1.1.1:53.
func New(address string, timeout time.Duration) *Checker {
	return &Checker{
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
		address: address,
	}
}

var (
	ErrRcodeNotSuccess = errors.New("response code is not success")
	ErrNoARecord       = errors.New("no A record found")
	ErrIPMismatch      = errors.New("IP address mismatch")
)

// Check returns an error if the A records of hostname
// do not contain the ip given.
func (c *Checker) Check(ctx context.Context, hostname, ip string) (err error) {
	request := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Opcode:           dns.OpcodeQuery,
			RecursionDesired: true,
		},
		Question: []dns.Question{{
			Name:   dns.Fqdn(hostname),
			Qtype:  dns.TypeA,
			Qclass: dns.ClassINET,
		}},
	}

	response, _, err := c.client.ExchangeContext(ctx, request, c.address)
	if err != nil {
		return fmt.Errorf("exchanging with %s: %w", c.address, err)
	}

	if response.Rcode != dns.RcodeSuccess {
		return fmt.Errorf("%w: %s", ErrRcodeNotSuccess, dns.RcodeToString[response.Rcode])
	}

	ips := make([]string, 0, len(response.Answer))
	for _, answer := range response.Answer {
		record, ok := answer.(*dns.A)
		if !ok {
			continue
		}
		ips = append(ips, record.A.String())
	}

	if len(ips) == 0 {
		return fmt.Errorf("%w: for %s", ErrNoARecord, hostname)
	}

	for _, resolvedIP := range ips {
		if resolvedIP == ip {
			return nil
		}
	}

	return fmt.Errorf("%w: %s resolves to %s instead of %s",
		ErrIPMismatch, hostname, strings.Join(ips, ", "), ip)
}
