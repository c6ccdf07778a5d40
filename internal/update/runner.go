// Package update runs a single pass updating every DynHost record
// to the current public IP address.
package update

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

type Settings struct {
	ConfigFile     string
	Records        RecordsReader
	IPFetcher      PublicIPFetcher
	Cache          Cache
	Client         *http.Client
	UpdateURL      url.URL
	UserAgent      string
	Printer        Printer
	Logger         Logger
	Shoutrrr       ShoutrrrClient
	Healthchecksio HealthchecksIOClient
	// DNSChecker is optional and disables the DNS
	// verification of updated records if nil.
	DNSChecker DNSChecker
}

type Runner struct {
	configFile string
	records    RecordsReader
	ipFetcher  PublicIPFetcher
	cache      Cache
	client     *http.Client
	updateURL  url.URL
	userAgent  string
	printer    Printer
	logger     Logger
	shoutrrr   ShoutrrrClient
	hioClient  HealthchecksIOClient
	dnsChecker DNSChecker
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewRunner(settings Settings) *Runner {
	return &Runner{
		configFile: settings.ConfigFile,
		records:    settings.Records,
		ipFetcher:  settings.IPFetcher,
		cache:      settings.Cache,
		client:     settings.Client,
		updateURL:  settings.UpdateURL,
		userAgent:  settings.UserAgent,
		printer:    settings.Printer,
		logger:     settings.Logger,
		shoutrrr:   settings.Shoutrrr,
		hioClient:  settings.Healthchecksio,
		dnsChecker: settings.DNSChecker,
		sleep:      sleep,
	}
}

func sleep(ctx context.Context, d time.Duration) (err error) {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
