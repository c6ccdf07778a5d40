package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

type flags struct {
	selfUpdate bool
	force      bool
	dev        bool
	version    bool
	help       bool
	// delay is the raw --delay value, nil if the flag is not set.
	delay *string
	usage string
}

// parseFlags parses the program arguments, without the program name.
// Unknown flags are ignored.
func parseFlags(arguments []string) (f flags, err error) {
	flagSet := pflag.NewFlagSet("dynhost-updater", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.ParseErrorsWhitelist.UnknownFlags = true
	flagSet.SortFlags = false

	flagSet.BoolVar(&f.selfUpdate, "self-update", false,
		"replace the program with the latest release if it is newer, and exit")
	flagSet.BoolVar(&f.force, "force", false,
		"update records even if the public IP address did not change")
	delay := flagSet.String("delay", "",
		"pause in milliseconds between two record updates")
	flagSet.BoolVar(&f.dev, "dev", false,
		"log update requests URLs and raw responses")
	flagSet.BoolVar(&f.version, "version", false, "print the version and exit")
	flagSet.BoolVarP(&f.help, "help", "h", false, "print this help and exit")

	err = flagSet.Parse(arguments)
	if err != nil {
		return f, fmt.Errorf("parsing flags: %w", err)
	}

	if flagSet.Changed("delay") {
		f.delay = delay
	}
	f.usage = "Usage of dynhost-updater:\n" + flagSet.FlagUsages()

	return f, nil
}

var ErrDelayNotValid = errors.New("delay is not valid")

// parseDelay parses a non-negative integer number of milliseconds.
func parseDelay(s string) (delay time.Duration, err error) {
	milliseconds, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrDelayNotValid, s)
	} else if milliseconds < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrDelayNotValid, milliseconds)
	}
	return time.Duration(milliseconds) * time.Millisecond, nil
}
