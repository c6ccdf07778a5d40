package verify

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/miekg/dns"
	"github.com/qdm12/dynhost-updater/internal/verify/mock_verify"
	"github.com/stretchr/testify/assert"
)

func Test_Checker_Check(t *testing.T) {
	t.Parallel()

	expectedRequest := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Opcode:           dns.OpcodeQuery,
			RecursionDesired: true,
		},
		Question: []dns.Question{{
			Name:   "home.example.com.",
			Qtype:  dns.TypeA,
			Qclass: dns.ClassINET,
		}},
	}

	testCases := map[string]struct {
		response    *dns.Msg
		exchangeErr error
		errWrapped  error
		errMessage  string
	}{
		"exchange error": {
			exchangeErr: errors.New("dummy"),
			errMessage:  "exchanging with 1.1.1.1:53: dummy",
		},
		"name error": {
			response: &dns.Msg{
				MsgHdr: dns.MsgHdr{Rcode: dns.RcodeNameError},
			},
			errWrapped: ErrRcodeNotSuccess,
			errMessage: "response code is not success: NXDOMAIN",
		},
		"no A record": {
			response: &dns.Msg{
				Answer: []dns.RR{&dns.CNAME{Target: "other.example.com."}},
			},
			errWrapped: ErrNoARecord,
			errMessage: "no A record found: for home.example.com",
		},
		"mismatch": {
			response: &dns.Msg{
				Answer: []dns.RR{
					&dns.A{A: net.IPv4(1, 1, 1, 1)},
					&dns.A{A: net.IPv4(2, 2, 2, 2)},
				},
			},
			errWrapped: ErrIPMismatch,
			errMessage: "IP address mismatch: home.example.com resolves to " +
				"1.1.1.1, 2.2.2.2 instead of 5.6.7.8",
		},
		"match": {
			response: &dns.Msg{
				Answer: []dns.RR{
					&dns.CNAME{Target: "other.example.com."},
					&dns.A{A: net.IPv4(5, 6, 7, 8)},
				},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ctx := context.Background()

			client := mock_verify.NewMockClient(ctrl)
			client.EXPECT().
				ExchangeContext(ctx, expectedRequest, "1.1.1.1:53").
				Return(testCase.response, time.Millisecond, testCase.exchangeErr)

			checker := &Checker{
				client:  client,
				address: "1.1.1.1:53",
			}

			err := checker.Check(ctx, "home.example.com", "5.6.7.8")

			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
			}
			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
