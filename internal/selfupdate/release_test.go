package selfupdate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AssetName(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		goos       string
		goarch     string
		name       string
		errWrapped error
		errMessage string
	}{
		"linux amd64": {
			goos:   "linux",
			goarch: "amd64",
			name:   "dynhost-updater-linux-x64",
		},
		"windows amd64": {
			goos:   "windows",
			goarch: "amd64",
			name:   "dynhost-updater-windows-x64.exe",
		},
		"darwin amd64": {
			goos:   "darwin",
			goarch: "amd64",
			name:   "dynhost-updater-darwin-x64",
		},
		"darwin arm64": {
			goos:   "darwin",
			goarch: "arm64",
			name:   "dynhost-updater-darwin-aarch64",
		},
		"linux arm64": {
			goos:       "linux",
			goarch:     "arm64",
			errWrapped: ErrPlatformNotSupported,
			errMessage: "platform not supported: linux/arm64",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assetName, err := AssetName(testCase.goos, testCase.goarch)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.name, assetName)
		})
	}
}

func Test_isNewer(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		latest     string
		current    string
		newer      bool
		errWrapped error
		errMessage string
	}{
		"newer patch": {
			latest:  "v1.0.1",
			current: "v1.0.0",
			newer:   true,
		},
		"same version": {
			latest:  "v1.0.0",
			current: "v1.0.0",
		},
		"older": {
			latest:  "v1.0.0",
			current: "v1.2.0",
		},
		"without v prefix": {
			latest:  "1.10.0",
			current: "1.9.0",
			newer:   true,
		},
		"prerelease is older than release": {
			latest:  "v2.0.0",
			current: "v2.0.0-rc1",
			newer:   true,
		},
		"development build": {
			latest:  "v1.0.0",
			current: "unknown",
			newer:   true,
		},
		"invalid latest": {
			latest:     "nightly",
			current:    "v1.0.0",
			errWrapped: ErrVersionNotValid,
			errMessage: `version is not valid: latest release tag "nightly"`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			newer, err := isNewer(testCase.latest, testCase.current)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.newer, newer)
		})
	}
}

func Test_releaseData_assetURL(t *testing.T) {
	t.Parallel()

	release := releaseData{
		TagName: "v1.0.0",
		Assets: []assetData{
			{Name: "dynhost-updater-linux-x64", DownloadURL: "https://example.com/linux"},
			{Name: "dynhost-updater-darwin-x64", DownloadURL: "https://example.com/darwin"},
		},
	}

	url, err := release.assetURL("dynhost-updater-darwin-x64")
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/darwin", url)

	url, err = release.assetURL("dynhost-updater-windows-x64.exe")
	assert.ErrorIs(t, err, ErrAssetNotFound)
	assert.EqualError(t, err, "asset not found: dynhost-updater-windows-x64.exe in release v1.0.0")
	assert.Empty(t, url)
}
