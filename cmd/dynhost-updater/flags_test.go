package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

func Test_parseFlags(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		arguments  []string
		flags      flags
		errMessage string
	}{
		"no argument": {},
		"all flags": {
			arguments: []string{"--dev", "--delay=2000", "--force", "--self-update"},
			flags: flags{
				selfUpdate: true,
				force:      true,
				dev:        true,
				delay:      ptrTo("2000"),
			},
		},
		"delay as separate argument": {
			arguments: []string{"--delay", "0"},
			flags:     flags{delay: ptrTo("0")},
		},
		"invalid delay kept raw": {
			arguments: []string{"--delay=abc"},
			flags:     flags{delay: ptrTo("abc")},
		},
		"unknown flags ignored": {
			arguments: []string{"--unknown", "--force", "-x"},
			flags:     flags{force: true},
		},
		"positional argument ignored": {
			arguments: []string{"run", "--dev"},
			flags:     flags{dev: true},
		},
		"version": {
			arguments: []string{"--version"},
			flags:     flags{version: true},
		},
		"help shorthand": {
			arguments: []string{"-h"},
			flags:     flags{help: true},
		},
		"bad boolean value": {
			arguments:  []string{"--force=maybe"},
			errMessage: `parsing flags: invalid argument "maybe"`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := parseFlags(testCase.arguments)

			if testCase.errMessage != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, f.usage, "--self-update")
			f.usage = ""
			assert.Equal(t, testCase.flags, f)
		})
	}
}

func Test_parseDelay(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		delay      time.Duration
		errWrapped error
		errMessage string
	}{
		"zero": {
			s: "0",
		},
		"milliseconds": {
			s:     "2000",
			delay: 2 * time.Second,
		},
		"not an integer": {
			s:          "2s",
			errWrapped: ErrDelayNotValid,
			errMessage: `delay is not valid: "2s" is not an integer`,
		},
		"negative": {
			s:          "-1",
			errWrapped: ErrDelayNotValid,
			errMessage: "delay is not valid: -1 is negative",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			delay, err := parseDelay(testCase.s)

			assert.Equal(t, testCase.delay, delay)
			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_isTerminal(t *testing.T) {
	t.Parallel()
	assert.False(t, isTerminal(bytes.NewBuffer(nil)))
}
