package publicip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrBadHTTPStatus = errors.New("bad HTTP status")
	ErrNoIPFound     = errors.New("no IP address found")
)

// fetch returns the trimmed response body of the url.
// The IP address is not parsed and kept opaque.
func fetch(ctx context.Context, client *http.Client, url string) (
	publicIP string, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	response, err := client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %s from %q", ErrBadHTTPStatus, response.Status, url)
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	err = response.Body.Close()
	if err != nil {
		return "", err
	}

	publicIP = strings.TrimSpace(string(b))
	if publicIP == "" {
		return "", fmt.Errorf("%w: from %q", ErrNoIPFound, url)
	}

	return publicIP, nil
}
