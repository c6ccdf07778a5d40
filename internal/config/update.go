package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/qdm12/dynhost-updater/internal/provider/ovh"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Update struct {
	// Delay is the pause between two consecutive record updates.
	// It is overridden by the --delay flag.
	Delay *time.Duration
	// URL is the DynHost update endpoint.
	URL string
}

func (u *Update) setDefaults() {
	const defaultDelay = 5 * time.Second
	u.Delay = gosettings.DefaultPointer(u.Delay, defaultDelay)
	u.URL = gosettings.DefaultComparable(u.URL, ovh.DefaultUpdateURL)
}

var (
	ErrDelayNegative     = errors.New("delay is negative")
	ErrUpdateURLNotValid = errors.New("update URL is not valid")
)

func (u Update) Validate() (err error) {
	if *u.Delay < 0 {
		return fmt.Errorf("%w: %s", ErrDelayNegative, *u.Delay)
	}

	parsedURL, err := url.Parse(u.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpdateURLNotValid, err)
	} else if parsedURL.Scheme != "https" && parsedURL.Scheme != "http" {
		return fmt.Errorf("%w: scheme %q is not http or https", ErrUpdateURLNotValid, parsedURL.Scheme)
	}

	return nil
}

func (u Update) String() string {
	return u.toLinesNode().String()
}

func (u Update) toLinesNode() *gotree.Node {
	node := gotree.New("Update")
	node.Appendf("Delay between records: %s", *u.Delay)
	node.Appendf("URL: %s", u.URL)
	return node
}

// ParsedURL assumes the settings have been validated.
func (u Update) ParsedURL() url.URL {
	parsedURL, err := url.Parse(u.URL)
	if err != nil {
		panic(err)
	}
	return *parsedURL
}

func (u *Update) read(r *reader.Reader, warner Warner) (err error) {
	u.Delay, err = readUpdateDelay(r, warner)
	if err != nil {
		return err
	}

	u.URL = r.String("UPDATE_URL", reader.ForceLowercase(false))
	return nil
}

func readUpdateDelay(r *reader.Reader, warner Warner) (delay *time.Duration, err error) {
	// Retro-compatibility: DELAY variable name, integer only, treated as milliseconds
	delayStringPtr := r.Get("DELAY")
	if delayStringPtr != nil {
		handleDeprecated(warner, "DELAY", "UPDATE_DELAY")
		delayInt, err := strconv.Atoi(*delayStringPtr)
		if err != nil {
			return nil, fmt.Errorf("environment variable DELAY: %w", err)
		}
		delay = new(time.Duration)
		*delay = time.Duration(delayInt) * time.Millisecond
		return delay, nil
	}

	delayStringPtr = r.Get("UPDATE_DELAY")
	if delayStringPtr == nil {
		return nil, nil //nolint:nilnil
	}

	delay = new(time.Duration)
	*delay, err = time.ParseDuration(*delayStringPtr)
	if err != nil {
		return nil, fmt.Errorf("environment variable UPDATE_DELAY: %w", err)
	}
	return delay, nil
}
