package ovh

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/qdm12/dynhost-updater/internal/models"
	"github.com/qdm12/dynhost-updater/internal/provider/errors"
	"github.com/qdm12/dynhost-updater/internal/provider/headers"
	"github.com/qdm12/dynhost-updater/internal/provider/utils"
)

// DefaultUpdateURL is the OVH DynHost update endpoint.
const DefaultUpdateURL = "https://www.ovh.com/nic/update"

type Provider struct {
	username  string
	password  string
	hostname  string
	updateURL url.URL
	userAgent string
}

func New(record models.Record, updateURL url.URL, userAgent string) *Provider {
	return &Provider{
		username:  record.Username,
		password:  record.Password,
		hostname:  record.Hostname,
		updateURL: updateURL,
		userAgent: userAgent,
	}
}

func (p *Provider) String() string {
	return fmt.Sprintf("[hostname: %s | provider: OVH DynHost]", p.hostname)
}

func (p *Provider) Hostname() string {
	return p.hostname
}

// Update sends the ip to the DynHost update endpoint and classifies the response.
// The credentials are only sent in the Authorization header.
// The error returned is nil if and only if the outcome is not a failure.
func (p *Provider) Update(ctx context.Context, client *http.Client, ip string) (
	result models.UpdateResult, err error) {
	result.Outcome = models.OutcomeFailure

	u := p.updateURL
	values := url.Values{}
	values.Set("system", "dyndns")
	values.Set("hostname", p.hostname)
	values.Set("myip", ip)
	u.RawQuery = values.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return result, fmt.Errorf("%w: %w", errors.ErrBadRequest, err)
	}
	request.SetBasicAuth(p.username, p.password)
	headers.SetUserAgent(request, p.userAgent)

	response, err := client.Do(request)
	if err != nil {
		return result, err
	}

	s, err := utils.ReadAndTrimBody(response.Body)
	if err != nil {
		return result, fmt.Errorf("%w: %w", errors.ErrReadResponse, err)
	}
	result.Raw = s

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return result, makeStatusError(response.Status, s)
	}

	result.Status, result.IP, _ = strings.Cut(s, " ")
	switch {
	case result.Status == "good":
		result.Outcome = models.OutcomeGood
	case strings.HasPrefix(result.Status, "nochg"):
		result.Outcome = models.OutcomeNoChange
	default:
		result.Outcome = models.OutcomeOther
	}
	return result, nil
}
