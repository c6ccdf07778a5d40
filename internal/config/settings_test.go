package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Settings_String(t *testing.T) {
	t.Parallel()

	var defaultSettings Config
	defaultSettings.SetDefaults()

	s := defaultSettings.String()

	const expected = `Settings summary:
├── HTTP client
|   └── Timeout: 10s
├── Update
|   ├── Delay between records: 5s
|   └── URL: https://www.ovh.com/nic/update
├── Public IP fetching
|   └── HTTP providers
|       ├── icanhazip
|       └── ipify
├── DNS verification: disabled
├── Self update
|   ├── Repository: qdm12/dynhost-updater
|   └── API URL: https://api.github.com
├── Healthchecks.io: disabled
├── Paths
|   ├── Config file: ./config.json
|   └── Cache file: ./last_ip.txt
└── Logger
    ├── Level: INFO
    └── Caller: hidden`
	assert.Equal(t, expected, s)
}

func Test_Settings_Validate(t *testing.T) {
	t.Parallel()

	var defaultSettings Config
	defaultSettings.SetDefaults()

	err := defaultSettings.Validate()

	assert.NoError(t, err)
}

func Test_Settings_SetDefaults_keepsZeroDelay(t *testing.T) {
	t.Parallel()

	zero := time.Duration(0)
	settings := Config{
		Update: Update{Delay: &zero},
	}

	settings.SetDefaults()

	assert.Equal(t, time.Duration(0), *settings.Update.Delay)
}
