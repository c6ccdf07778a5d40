package selfupdate

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

type releaseData struct {
	TagName string      `json:"tag_name"`
	Assets  []assetData `json:"assets"`
}

type assetData struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
}

var ErrAssetNotFound = errors.New("asset not found")

func (r releaseData) assetURL(name string) (url string, err error) {
	for _, asset := range r.Assets {
		if asset.Name == name {
			return asset.DownloadURL, nil
		}
	}
	return "", fmt.Errorf("%w: %s in release %s", ErrAssetNotFound, name, r.TagName)
}

var ErrPlatformNotSupported = errors.New("platform not supported")

// AssetName returns the name of the release asset for the
// operating system and architecture given.
func AssetName(goos, goarch string) (name string, err error) {
	const prefix = "dynhost-updater-"
	switch goos + "/" + goarch {
	case "linux/amd64":
		return prefix + "linux-x64", nil
	case "windows/amd64":
		return prefix + "windows-x64.exe", nil
	case "darwin/amd64":
		return prefix + "darwin-x64", nil
	case "darwin/arm64":
		return prefix + "darwin-aarch64", nil
	default:
		return "", fmt.Errorf("%w: %s/%s", ErrPlatformNotSupported, goos, goarch)
	}
}

var ErrVersionNotValid = errors.New("version is not valid")

// isNewer returns true if the latest version is strictly greater
// than the current version. A current version which is not a
// semantic version, such as a development build, is always older.
func isNewer(latest, current string) (newer bool, err error) {
	latestSemver := withVPrefix(latest)
	if !semver.IsValid(latestSemver) {
		return false, fmt.Errorf("%w: latest release tag %q", ErrVersionNotValid, latest)
	}

	currentSemver := withVPrefix(current)
	if !semver.IsValid(currentSemver) {
		return true, nil
	}

	return semver.Compare(latestSemver, currentSemver) > 0, nil
}

func withVPrefix(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
