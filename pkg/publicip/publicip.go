// Package publicip fetches the public IPv4 address of the machine
// from an ordered list of HTTPS echo services.
package publicip

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Logger

type Logger interface {
	Info(s string)
	Warn(s string)
}

type Fetcher struct {
	client *http.Client
	urls   []string
	logger Logger
}

func New(client *http.Client, logger Logger, options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	urls := make([]string, len(settings.providers))
	for i, provider := range settings.providers {
		urls[i], _ = provider.url()
	}

	return &Fetcher{
		client: client,
		urls:   urls,
		logger: logger,
	}, nil
}

var ErrAllServicesFailed = errors.New("all IP services failed")

// IP tries each echo service in order and returns the first
// IP address obtained. Each service is tried at most once.
func (f *Fetcher) IP(ctx context.Context) (ip string, err error) {
	errorMessages := make([]string, 0, len(f.urls))
	for _, url := range f.urls {
		ip, err = fetch(ctx, f.client, url)
		if err != nil {
			f.logger.Warn("fetching IP from " + url + ": " + err.Error())
			errorMessages = append(errorMessages, err.Error())
			continue
		}
		f.logger.Info("Successfully retrieved IP from " + url + ": " + ip)
		return ip, nil
	}
	return "", fmt.Errorf("%w: %s", ErrAllServicesFailed, strings.Join(errorMessages, "; "))
}
