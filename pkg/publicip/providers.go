package publicip

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type Provider string

const (
	Icanhazip Provider = "icanhazip"
	Ipify     Provider = "ipify"
)

func ListProviders() []Provider {
	return []Provider{
		Icanhazip,
		Ipify,
	}
}

var ErrUnknownProvider = errors.New("unknown public IP echo HTTP provider")

func ValidateProvider(provider Provider) error {
	_, ok := provider.url()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	return nil
}

func (provider Provider) url() (url string, ok bool) {
	switch provider {
	case Icanhazip:
		url = "https://ipv4.icanhazip.com"
	case Ipify:
		url = "https://api.ipify.org"
	}

	// Custom URL?
	if s := string(provider); strings.HasPrefix(s, "url:") {
		url = strings.TrimPrefix(s, "url:")
	}

	if url == "" {
		return "", false
	}

	return url, true
}

// CustomProvider creates a provider with a custom HTTP(s) URL.
// It is the responsibility of the caller to make sure it is a valid URL
// and that it returns an IPv4 address as its whole response body.
func CustomProvider(httpsURL *url.URL) Provider {
	return Provider("url:" + httpsURL.String())
}
