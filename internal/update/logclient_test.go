package update

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/dynhost-updater/internal/update/mock_update"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_makeLogClient(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		path               string
		requestLineRegex   string
		responseStatusCode int
		responseBody       string
		responseLine       string
	}{
		"good response": {
			path:               "/nic/update?hostname=a.example.com&myip=1.2.3.4",
			requestLineRegex:   `^GET http://127\.0\.0\.1:[0-9]{1,5}/nic/update\?hostname=a\.example\.com&myip=1\.2\.3\.4$`,
			responseStatusCode: http.StatusOK,
			responseBody:       "good 1.2.3.4\n",
			responseLine:       "200 OK | body: good 1.2.3.4",
		},
		"multi line error response": {
			path:               "/nic/update",
			requestLineRegex:   `^GET http://127\.0\.0\.1:[0-9]{1,5}/nic/update$`,
			responseStatusCode: http.StatusUnauthorized,
			responseBody:       "{\r\n  \"message\": \"Invalid credentials\"\r\n}\n",
			responseLine:       `401 Unauthorized | body: {   "message": "Invalid credentials" }`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			handler := http.HandlerFunc(func(rw http.ResponseWriter, request *http.Request) {
				assert.Equal(t, http.MethodGet, request.Method)
				rw.WriteHeader(testCase.responseStatusCode)
				_, err := rw.Write([]byte(testCase.responseBody))
				assert.NoError(t, err)
			})
			server := httptest.NewServer(handler)
			t.Cleanup(server.Close)

			client := server.Client()
			client.Timeout = time.Second

			logger := mock_update.NewMockLogger(ctrl)
			gomock.InOrder(
				logger.EXPECT().Info(gomock.AssignableToTypeOf("")).
					Do(func(s string) {
						assert.Regexp(t, testCase.requestLineRegex, s)
					}),
				logger.EXPECT().Info(testCase.responseLine),
			)

			logClient := makeLogClient(client, logger)

			assert.Equal(t, client.Timeout, logClient.Timeout)

			request, err := http.NewRequestWithContext(context.Background(),
				http.MethodGet, server.URL+testCase.path, nil)
			require.NoError(t, err)
			request.SetBasicAuth("user", "secret")

			response, err := logClient.Do(request)
			require.NoError(t, err)
			defer response.Body.Close()

			assert.Equal(t, testCase.responseStatusCode, response.StatusCode)
			b, err := io.ReadAll(response.Body)
			require.NoError(t, err)
			assert.Equal(t, testCase.responseBody, string(b))
		})
	}
}
