package ovh

import (
	"encoding/json"
	"fmt"

	"github.com/qdm12/dynhost-updater/internal/provider/errors"
)

// makeStatusError builds the error for a non 2xx response.
// A JSON body contributes its message field if it has one,
// any other body is appended as is.
func makeStatusError(status, body string) error {
	var object map[string]any
	err := json.Unmarshal([]byte(body), &object)
	if err != nil {
		if !json.Valid([]byte(body)) {
			return fmt.Errorf("%w: %s - %s", errors.ErrBadHTTPStatus, status, body)
		}
		// valid JSON but not an object
		return fmt.Errorf("%w: %s", errors.ErrBadHTTPStatus, status)
	}

	message, ok := object["message"].(string)
	if !ok || message == "" {
		return fmt.Errorf("%w: %s", errors.ErrBadHTTPStatus, status)
	}
	return fmt.Errorf("%w: %s - %s", errors.ErrBadHTTPStatus, status, message)
}
