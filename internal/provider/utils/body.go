package utils

import (
	"fmt"
	"io"
	"strings"
)

// ReadAndTrimBody reads the body, closes it and trims spaces from the body data.
// The case of the body is left untouched.
func ReadAndTrimBody(body io.ReadCloser) (trimmedBody string, err error) {
	b, err := io.ReadAll(body)
	if err != nil {
		_ = body.Close()
		return "", fmt.Errorf("reading body: %w", err)
	}
	err = body.Close()
	if err != nil {
		return "", fmt.Errorf("closing body: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}

// ToSingleLine removes line breaks from s so it can be logged on one line.
func ToSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\n", " ")
	line = strings.ReplaceAll(line, "\r", "")
	return strings.TrimSpace(line)
}
