package update

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/qdm12/dynhost-updater/internal/healthchecksio"
	"github.com/qdm12/dynhost-updater/internal/models"
	"github.com/qdm12/dynhost-updater/internal/params"
	ddnserrors "github.com/qdm12/dynhost-updater/internal/provider/errors"
	"github.com/qdm12/dynhost-updater/internal/provider/ovh"
)

type Options struct {
	// Force updates records even if the public IP address
	// did not change since the last successful run.
	Force bool
	// Delay is the pause between two consecutive record updates.
	Delay time.Duration
	// Dev logs the update requests URLs and the raw responses.
	Dev bool
}

var ErrUpdateFailed = errors.New("updating records failed")

// Run updates every record in the records file to the current public
// IP address, one after the other. The summary line is printed
// before returning, and err is nil only if every record succeeded
// or if there was nothing to do. No network call is made if the
// records file cannot be read or is empty.
func (r *Runner) Run(ctx context.Context, options Options) (err error) {
	defer func() {
		r.printer.Summary(err == nil)
	}()

	records, warnings, err := r.records.JSONRecords(r.configFile)
	for _, warning := range warnings {
		r.logger.Warn(warning)
	}
	if err != nil {
		if errors.Is(err, params.ErrConfigNotFound) {
			r.printer.ConfigMissing(r.configFile, params.Example())
		}
		return fmt.Errorf("reading records: %w", err)
	}

	if len(records) == 0 {
		r.logger.Info("No records found in " + r.configFile + ". Exiting.")
		return nil
	}

	r.ping(ctx, healthchecksio.Start)
	defer func() {
		if err != nil {
			r.shoutrrr.Notify(err.Error())
		}
		r.ping(context.Background(), healthchecksio.ExitState(err == nil))
	}()

	ip, err := r.ipFetcher.IP(ctx)
	if err != nil {
		return fmt.Errorf("fetching public IP address: %w", err)
	}

	if !r.cache.Changed(ip) {
		if !options.Force {
			r.logger.Info("IP address " + ip + " has not changed since last run, skipping update")
			return nil
		}
		r.logger.Info("IP address " + ip + " has not changed since last run, forcing update")
	}

	client := r.client
	if options.Dev {
		client = makeLogClient(client, r.logger)
	}

	failed := 0
	var changedHostnames []string
	for i, record := range records {
		if i > 0 && options.Delay > 0 {
			err = r.sleep(ctx, options.Delay)
			if err != nil {
				return fmt.Errorf("waiting before updating %s: %w", record.Hostname, err)
			}
		}

		outcome := r.updateRecord(ctx, client, record, ip)
		if !outcome.Succeeded() {
			failed++
		} else if outcome == models.OutcomeGood {
			changedHostnames = append(changedHostnames, record.Hostname)
		}
	}

	if len(changedHostnames) > 0 {
		r.shoutrrr.Notify(strings.Join(changedHostnames, ", ") + " updated to IP address " + ip)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d records failed",
			ErrUpdateFailed, failed, len(records))
	}

	err = r.cache.Save(ip)
	if err != nil {
		r.logger.Warn(err.Error())
	}

	r.verify(ctx, records, ip)

	return nil
}

// updateRecord never returns an error: failures are
// printed and reflected in the outcome returned.
func (r *Runner) updateRecord(ctx context.Context, client *http.Client,
	record models.Record, ip string) (outcome models.Outcome) {
	provider := ovh.New(record, r.updateURL, r.userAgent)
	hostname := provider.Hostname()
	r.logger.Debug("updating " + provider.String() + " to " + ip)

	result, err := provider.Update(ctx, client, ip)
	if err != nil {
		if errors.Is(err, ddnserrors.ErrBadHTTPStatus) {
			r.printer.Rejected(hostname, err)
		} else {
			r.printer.Errored(hostname, err)
		}
		return result.Outcome
	}

	if result.IP == "" {
		result.IP = ip
	}

	switch result.Outcome {
	case models.OutcomeGood:
		r.printer.Success(hostname, result.IP)
	case models.OutcomeNoChange:
		r.printer.NoChange(hostname, result.IP)
	default:
		r.printer.Unrecognized(hostname, result.Raw)
	}
	return result.Outcome
}

func (r *Runner) verify(ctx context.Context, records []models.Record, ip string) {
	if r.dnsChecker == nil {
		return
	}

	verified := 0
	for _, record := range records {
		err := r.dnsChecker.Check(ctx, record.Hostname, ip)
		if err != nil {
			r.logger.Warn("verifying DNS of " + record.Hostname + ": " + err.Error())
			continue
		}
		verified++
	}
	r.logger.Info("DNS verified for " + strconv.Itoa(verified) +
		" of " + strconv.Itoa(len(records)) + " records")
}

func (r *Runner) ping(ctx context.Context, state healthchecksio.State) {
	const timeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	err := r.hioClient.Ping(ctx, state)
	if err != nil {
		r.logger.Warn("pinging healthchecks.io: " + err.Error())
	}
}
