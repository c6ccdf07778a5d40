package healthchecksio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Client_Ping(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		uuid       string
		state      State
		statusCode int
		path       string
		errWrapped error
		errMessage string
	}{
		"disabled": {
			state: Start,
		},
		"start": {
			uuid:       "abc",
			state:      Start,
			statusCode: http.StatusOK,
			path:       "/abc/start",
		},
		"ok": {
			uuid:       "abc",
			state:      Ok,
			statusCode: http.StatusOK,
			path:       "/abc",
		},
		"exit 1": {
			uuid:       "abc",
			state:      ExitState(false),
			statusCode: http.StatusOK,
			path:       "/abc/1",
		},
		"bad status": {
			uuid:       "abc",
			state:      ExitState(true),
			statusCode: http.StatusNotFound,
			path:       "/abc/0",
			errWrapped: ErrStatusCode,
			errMessage: "bad status code: 404 Not Found",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if testCase.path == "" {
					t.Error("no request expected")
				}
				assert.Equal(t, testCase.path, r.URL.Path)
				assert.Equal(t, "dynhost-updater/v1.0.0", r.Header.Get("User-Agent"))
				w.WriteHeader(testCase.statusCode)
			}))
			t.Cleanup(server.Close)

			client := New(server.Client(), server.URL, testCase.uuid, "dynhost-updater/v1.0.0")

			err := client.Ping(context.Background(), testCase.state)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}
