// Package healthchecksio pings healthchecks.io at the start and
// at the end of each run.
package healthchecksio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// New creates a new healthchecks.io client.
// If passed an empty uuid string, it acts as no-op implementation.
func New(httpClient *http.Client, baseURL, uuid, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		uuid:       uuid,
		userAgent:  userAgent,
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	uuid       string
	userAgent  string
}

var (
	ErrStatusCode = errors.New("bad status code")
)

type State string

const (
	Ok    State = "ok"
	Start State = "start"
	Exit0 State = "0"
	Exit1 State = "1"
)

// ExitState returns the state to ping for the exit code given.
func ExitState(success bool) State {
	if success {
		return Exit0
	}
	return Exit1
}

func (c *Client) Ping(ctx context.Context, state State) (err error) {
	if c.uuid == "" {
		return nil
	}

	url := c.baseURL + "/" + c.uuid
	if state != Ok {
		url += "/" + string(state)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("User-Agent", c.userAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		_ = response.Body.Close()
		return fmt.Errorf("%w: %s", ErrStatusCode, response.Status)
	}

	err = response.Body.Close()
	if err != nil {
		return fmt.Errorf("closing response body: %w", err)
	}

	return nil
}
