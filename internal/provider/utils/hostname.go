package utils

import (
	"errors"
	"fmt"
	"unicode/utf8"

	ddnserrors "github.com/qdm12/dynhost-updater/internal/provider/errors"
)

var (
	ErrHostnameTooLong          = errors.New("hostname is too long")
	ErrHostnameLabelTooLong     = errors.New("hostname label is too long")
	ErrHostnameInvalidCharacter = errors.New("hostname has invalid character")
	ErrHostnameTLDMissing       = errors.New("hostname has missing top level domain")
)

// CheckHostname returns an non-nil error if the hostname is not valid.
// https://tools.ietf.org/html/rfc1034#section-3.5
// https://tools.ietf.org/html/rfc1123#section-2.
func CheckHostname(hostname string) (err error) {
	const maxHostnameLength = 255
	switch {
	case len(hostname) == 0:
		return fmt.Errorf("%w", ddnserrors.ErrHostnameNotSet)
	case len(hostname) > maxHostnameLength:
		return fmt.Errorf("%w: %q has a length of %d characters exceeding the maximum of %d",
			ErrHostnameTooLong, hostname, len(hostname), maxHostnameLength)
	}

	const maxLabelLength = 63
	labelStart := 0
	for i, character := range hostname {
		if character == '.' {
			err = checkLabel(hostname, labelStart, i)
			if err != nil {
				return err
			}
			labelStart = i + 1
			continue
		}

		if !isHostnameCharacter(character) {
			r, _ := utf8.DecodeRuneInString(hostname[i:])
			if r == utf8.RuneError {
				return fmt.Errorf("%w: invalid rune at offset %d for hostname %q",
					ErrHostnameInvalidCharacter, i, hostname)
			}
			return fmt.Errorf("%w: '%c' for hostname %q",
				ErrHostnameInvalidCharacter, r, hostname)
		}
	}

	tld := hostname[labelStart:]
	switch {
	case tld == "":
		return fmt.Errorf("%w: %q", ErrHostnameTLDMissing, hostname)
	case len(tld) > maxLabelLength:
		return fmt.Errorf("%w: TLD label in hostname %q",
			ErrHostnameLabelTooLong, hostname)
	case tld[0] == '-':
		return fmt.Errorf("%w: TLD label starts with '-' in hostname %q",
			ErrHostnameInvalidCharacter, hostname)
	case tld[len(tld)-1] == '-':
		return fmt.Errorf("%w: TLD label ends with '-' in hostname %q",
			ErrHostnameInvalidCharacter, hostname)
	case tld[0] >= '0' && tld[0] <= '9':
		return fmt.Errorf("%w: TLD label begins with a digit in hostname %q",
			ErrHostnameInvalidCharacter, hostname)
	}
	return nil
}

// checkLabel checks the label hostname[start:end] where end is
// the index of the dot following the label.
func checkLabel(hostname string, start, end int) error {
	const maxLabelLength = 63
	switch {
	case end == start:
		return fmt.Errorf("%w: label starts with '.' for hostname %q",
			ErrHostnameInvalidCharacter, hostname)
	case end-start > maxLabelLength:
		return fmt.Errorf("%w: for hostname %q", ErrHostnameLabelTooLong, hostname)
	case hostname[start] == '-':
		return fmt.Errorf("%w: label starts with '-' for hostname %q",
			ErrHostnameInvalidCharacter, hostname)
	case hostname[end-1] == '-':
		return fmt.Errorf("%w: label ends with '-' for hostname %q",
			ErrHostnameInvalidCharacter, hostname)
	}
	return nil
}

func isHostnameCharacter(character rune) bool {
	return (character >= 'a' && character <= 'z') ||
		(character >= 'A' && character <= 'Z') ||
		(character >= '0' && character <= '9') ||
		character == '-'
}
