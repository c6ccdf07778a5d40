package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/qdm12/dynhost-updater/pkg/publicip"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type PubIP struct {
	// HTTPProviders are the names of the built-in echo services
	// or https URLs, in the order they are tried.
	HTTPProviders []string
}

func (p *PubIP) setDefaults() {
	defaultProviders := publicip.ListProviders()
	defaults := make([]string, len(defaultProviders))
	for i, provider := range defaultProviders {
		defaults[i] = string(provider)
	}
	p.HTTPProviders = gosettings.DefaultSlice(p.HTTPProviders, defaults)
}

var (
	ErrNoPublicIPHTTPProvider = errors.New("no public IP HTTP provider specified")
)

func (p PubIP) Validate() (err error) {
	if len(p.HTTPProviders) == 0 {
		return fmt.Errorf("%w", ErrNoPublicIPHTTPProvider)
	}

	for _, providerString := range p.HTTPProviders {
		if _, ok := parseHTTPSURL(providerString); ok {
			continue
		}

		err = publicip.ValidateProvider(publicip.Provider(providerString))
		if err != nil {
			return fmt.Errorf("HTTP providers: %w", err)
		}
	}

	return nil
}

func (p PubIP) String() string {
	return p.toLinesNode().String()
}

func (p PubIP) toLinesNode() (node *gotree.Node) {
	node = gotree.New("Public IP fetching")
	childNode := node.Appendf("HTTP providers")
	for _, provider := range p.HTTPProviders {
		childNode.Appendf(provider)
	}
	return node
}

// ToOptions assumes the settings have been validated.
func (p PubIP) ToOptions() (options []publicip.Option) {
	providers := make([]publicip.Provider, len(p.HTTPProviders))
	for i, providerString := range p.HTTPProviders {
		customURL, ok := parseHTTPSURL(providerString)
		if ok {
			providers[i] = publicip.CustomProvider(customURL)
			continue
		}
		providers[i] = publicip.Provider(providerString)
	}
	return []publicip.Option{
		publicip.SetProviders(providers[0], providers[1:]...),
	}
}

func parseHTTPSURL(s string) (u *url.URL, ok bool) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return nil, false
	}
	return u, true
}

func (p *PubIP) read(r *reader.Reader) {
	p.HTTPProviders = r.CSV("PUBLICIP_HTTP_PROVIDERS", reader.ForceLowercase(false))
}
