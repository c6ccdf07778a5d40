package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/dynhost-updater/internal/cache"
	"github.com/qdm12/dynhost-updater/internal/config"
	"github.com/qdm12/dynhost-updater/internal/console"
	"github.com/qdm12/dynhost-updater/internal/healthchecksio"
	"github.com/qdm12/dynhost-updater/internal/models"
	"github.com/qdm12/dynhost-updater/internal/params"
	"github.com/qdm12/dynhost-updater/internal/selfupdate"
	"github.com/qdm12/dynhost-updater/internal/shoutrrr"
	"github.com/qdm12/dynhost-updater/internal/update"
	"github.com/qdm12/dynhost-updater/internal/verify"
	"github.com/qdm12/dynhost-updater/pkg/publicip"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"golang.org/x/term"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, os.Stdout, os.Stderr, logger, buildInfo)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, stopping")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil {
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
		os.Exit(1)
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
	case <-timer.C:
		logger.Warn("Stop timed out")
	}

	cancel()
	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	stdout, stderr io.Writer, logger log.LoggerInterface,
	buildInfo models.BuildInformation) (err error) {
	flags, err := parseFlags(args[1:])
	if err != nil {
		return err
	}

	switch {
	case flags.help:
		fmt.Fprint(stdout, flags.usage)
		return nil
	case flags.version:
		printSplash(stdout, buildInfo)
		fmt.Fprintln(stdout, buildInfo.VersionString())
		return nil
	}

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: config.Client.Timeout}
	defer client.CloseIdleConnections()

	if flags.selfUpdate {
		updater := selfupdate.New(client, config.SelfUpdate.APIURL,
			config.SelfUpdate.Repository, buildInfo.Version, buildInfo.UserAgent(),
			logger.New(log.SetComponent("self update")))
		err = updater.Run(ctx)
		if err != nil {
			return fmt.Errorf("self updating: %w", err)
		}
		return nil
	}

	delay := *config.Update.Delay
	if flags.delay != nil {
		flagDelay, err := parseDelay(*flags.delay)
		if err != nil {
			logger.Warn("flag --delay: " + err.Error() + ", using delay of " + delay.String())
		} else {
			delay = flagDelay
		}
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	ipFetcher, err := publicip.New(client, logger.New(log.SetComponent("public ip")),
		config.PubIP.ToOptions()...)
	if err != nil {
		return fmt.Errorf("creating public IP fetcher: %w", err)
	}

	hioClient := healthchecksio.New(client, config.Health.HealthchecksioBaseURL,
		*config.Health.HealthchecksioUUID, buildInfo.UserAgent())

	settings := update.Settings{
		ConfigFile:     *config.Paths.ConfigFile,
		Records:        params.NewReader(),
		IPFetcher:      ipFetcher,
		Cache:          cache.New(*config.Paths.CacheFile),
		Client:         client,
		UpdateURL:      config.Update.ParsedURL(),
		UserAgent:      buildInfo.UserAgent(),
		Printer:        console.New(stdout, stderr, isTerminal(stdout)),
		Logger:         logger,
		Shoutrrr:       shoutrrrClient,
		Healthchecksio: hioClient,
	}
	if *config.Verify.Enabled {
		settings.DNSChecker = verify.New(config.Verify.ResolverAddress, config.Verify.Timeout)
	}

	runner := update.NewRunner(settings)
	options := update.Options{
		Force: flags.force,
		Delay: delay,
		Dev:   flags.dev,
	}
	return runner.Run(ctx, options)
}

func printSplash(w io.Writer, buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "dynhost-updater",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Fprintln(w, line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Debug(config.String())

	return config, nil
}

// isTerminal returns true if w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
