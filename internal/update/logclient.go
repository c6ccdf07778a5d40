package update

import (
	"bytes"
	"io"
	"net/http"

	"github.com/qdm12/dynhost-updater/internal/provider/utils"
)

type Infoer interface {
	Info(s string)
}

// makeLogClient returns a copy of the client logging the URL of each
// request and the status and body of each response. Headers are never
// logged since they contain the credentials.
func makeLogClient(client *http.Client, logger Infoer) (newClient *http.Client) {
	originalTransport := client.Transport
	if originalTransport == nil {
		originalTransport = http.DefaultTransport
	}

	return &http.Client{
		Timeout: client.Timeout,
		Transport: &loggingRoundTripper{
			proxied: originalTransport,
			logger:  logger,
		},
	}
}

type loggingRoundTripper struct {
	proxied http.RoundTripper
	logger  Infoer
}

func (lrt *loggingRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	lrt.logger.Info(request.Method + " " + request.URL.String())

	response, err = lrt.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	lrt.logger.Info(responseToString(response))

	return response, nil
}

func responseToString(response *http.Response) (s string) {
	s = response.Status

	if response.Body != nil {
		newBody, bodyString := readAndResetBody(response.Body)
		response.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string) {
	b, err := io.ReadAll(body)
	_ = body.Close()
	if err != nil {
		bodyString = "error reading body: " + err.Error()
	} else {
		bodyString = utils.ToSingleLine(string(b))
	}
	newBody = io.NopCloser(bytes.NewBuffer(b))
	return newBody, bodyString
}
