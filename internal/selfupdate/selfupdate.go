// Package selfupdate replaces the running executable with the
// binary of the latest release, if it is newer.
package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Logger

type Logger interface {
	Info(s string)
}

type Updater struct {
	client     *resty.Client
	repository string
	version    string
	goos       string
	goarch     string
	executable func() (string, error)
	logger     Logger
}

// New creates an updater fetching releases of the repository,
// in the form owner/name, from the GitHub-like API at apiURL.
// The version is the version of the running program.
func New(httpClient *http.Client, apiURL, repository,
	version, userAgent string, logger Logger) *Updater {
	client := resty.NewWithClient(httpClient).
		SetBaseURL(apiURL).
		SetHeader("User-Agent", userAgent)
	return &Updater{
		client:     client,
		repository: repository,
		version:    version,
		goos:       runtime.GOOS,
		goarch:     runtime.GOARCH,
		executable: executablePath,
		logger:     logger,
	}
}

func executablePath() (path string, err error) {
	path, err = os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(path)
}

var ErrBadHTTPStatus = errors.New("bad HTTP status")

// Run updates the executable if the latest release is newer than
// the running version. The executable is left untouched on error.
func (u *Updater) Run(ctx context.Context) (err error) {
	release, err := u.latestRelease(ctx)
	if err != nil {
		return fmt.Errorf("fetching latest release: %w", err)
	}

	newer, err := isNewer(release.TagName, u.version)
	if err != nil {
		return err
	} else if !newer {
		u.logger.Info("Already up to date: running version " + u.version +
			" and latest release is " + release.TagName)
		return nil
	}

	assetName, err := AssetName(u.goos, u.goarch)
	if err != nil {
		return err
	}

	downloadURL, err := release.assetURL(assetName)
	if err != nil {
		return err
	}

	u.logger.Info("Downloading " + assetName + " of release " + release.TagName)
	content, err := u.download(ctx, downloadURL)
	if err != nil {
		return fmt.Errorf("downloading asset: %w", err)
	}

	path, err := u.executable()
	if err != nil {
		return fmt.Errorf("finding executable path: %w", err)
	}

	err = replaceFile(path, content)
	if err != nil {
		return fmt.Errorf("replacing executable: %w", err)
	}

	u.logger.Info("Updated " + path + " from version " + u.version +
		" to " + release.TagName)
	return nil
}

func (u *Updater) latestRelease(ctx context.Context) (release releaseData, err error) {
	response, err := u.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/vnd.github+json").
		ForceContentType("application/json").
		SetResult(&release).
		Get("/repos/" + u.repository + "/releases/latest")
	if err != nil {
		return release, err
	} else if response.IsError() {
		return release, fmt.Errorf("%w: %s", ErrBadHTTPStatus, response.Status())
	}
	return release, nil
}

func (u *Updater) download(ctx context.Context, url string) (content []byte, err error) {
	response, err := u.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/octet-stream").
		Get(url)
	if err != nil {
		return nil, err
	} else if response.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrBadHTTPStatus, response.Status())
	}
	return response.Body(), nil
}

// replaceFile writes the content to a temporary file next to
// path and renames it over path.
func replaceFile(path string, content []byte) (err error) {
	const perm os.FileMode = 0o755
	tempPath := path + ".tmp"
	err = os.WriteFile(tempPath, content, perm)
	if err != nil {
		return fmt.Errorf("writing temporary file: %w", err)
	}

	err = os.Chmod(tempPath, perm)
	if err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("making temporary file executable: %w", err)
	}

	err = os.Rename(tempPath, path)
	if err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temporary file: %w", err)
	}

	return nil
}
