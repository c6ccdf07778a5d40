package config

import (
	"testing"

	"github.com/qdm12/log"
	"github.com/stretchr/testify/assert"
)

func Test_parseLogLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		level      log.Level
		errWrapped error
		errMessage string
	}{
		"debug": {
			s:     "debug",
			level: log.LevelDebug,
		},
		"uppercase info": {
			s:     "INFO",
			level: log.LevelInfo,
		},
		"warning": {
			s:     "warning",
			level: log.LevelWarn,
		},
		"error": {
			s:     "error",
			level: log.LevelError,
		},
		"invalid": {
			s:          "verbose",
			errWrapped: ErrLogLevelUnknown,
			errMessage: `log level is unknown: "verbose" is not valid ` +
				"and can be one of debug, info, warning or error",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := parseLogLevel(testCase.s)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.level, level)
		})
	}
}
