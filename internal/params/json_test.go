package params

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/qdm12/dynhost-updater/internal/models"
	ddnserrors "github.com/qdm12/dynhost-updater/internal/provider/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Reader_JSONRecords(t *testing.T) {
	t.Parallel()

	errDummy := errors.New("dummy")

	testCases := map[string]struct {
		content    []byte
		readErr    error
		records    []models.Record
		warnings   []string
		errWrapped error
		errMessage string
	}{
		"missing file": {
			readErr:    &fs.PathError{Op: "open", Path: "config.json", Err: fs.ErrNotExist},
			errWrapped: ErrConfigNotFound,
			errMessage: "config file not found: open config.json: file does not exist",
		},
		"read error": {
			readErr:    errDummy,
			errWrapped: errDummy,
			errMessage: "reading config file: dummy",
		},
		"malformed JSON": {
			content:    []byte(`[{"username": }]`),
			errMessage: "decoding config file config.json: " +
				"invalid character '}' looking for beginning of value",
		},
		"not an array": {
			content: []byte(`{"username": "user"}`),
			errMessage: "decoding config file config.json: " +
				"json: cannot unmarshal object into Go value of type []models.Record",
		},
		"null": {
			content: []byte(`null`),
		},
		"empty array": {
			content: []byte(`[]`),
			records: []models.Record{},
		},
		"records in file order": {
			content: []byte(`[
				{"username": "u1", "password": "p1", "hostname": "b.example.com"},
				{"username": "u2", "password": "p2", "hostname": "a.example.com", "extra": 1}
			]`),
			records: []models.Record{
				{Username: "u1", Password: "p1", Hostname: "b.example.com"},
				{Username: "u2", Password: "p2", Hostname: "a.example.com"},
			},
		},
		"invalid records kept with warnings": {
			content: []byte(`[
				{"password": "p1", "hostname": "example.com"},
				{"username": "u2", "hostname": "example.com"},
				{"username": "u3", "password": "p3", "hostname": "exa mple.com"},
				{"username": "u4", "password": "p4"}
			]`),
			records: []models.Record{
				{Password: "p1", Hostname: "example.com"},
				{Username: "u2", Hostname: "example.com"},
				{Username: "u3", Password: "p3", Hostname: "exa mple.com"},
				{Username: "u4", Password: "p4"},
			},
			warnings: []string{
				"record 1 of 4 [hostname: example.com | username: ]: username is not set",
				"record 2 of 4 [hostname: example.com | username: u2]: password is not set",
				"record 3 of 4 [hostname: exa mple.com | username: u3]: " +
					`hostname has invalid character: ' ' for hostname "exa mple.com"`,
				"record 4 of 4 [hostname:  | username: u4]: hostname is not set",
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reader := &Reader{
				readFile: func(filename string) ([]byte, error) {
					assert.Equal(t, "config.json", filename)
					return testCase.content, testCase.readErr
				},
			}

			records, warnings, err := reader.JSONRecords("config.json")

			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
			}
			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.records, records)
			assert.Equal(t, testCase.warnings, warnings)
		})
	}
}

func Test_Reader_JSONRecords_notExist(t *testing.T) {
	t.Parallel()

	reader := NewReader()

	_, _, err := reader.JSONRecords(t.TempDir() + "/config.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func Test_checkRecord(t *testing.T) {
	t.Parallel()

	err := checkRecord(models.Record{Password: "p", Hostname: "example.com"})
	assert.ErrorIs(t, err, ddnserrors.ErrUsernameNotSet)

	err = checkRecord(models.Record{Username: "u", Password: "p", Hostname: "sub.example.com"})
	assert.NoError(t, err)
}

func Test_Example(t *testing.T) {
	t.Parallel()

	const expected = `[
  {
    "username": "your-ovh-username",
    "password": "your-ovh-password",
    "hostname": "your-domain.com"
  },
  {
    "username": "another-user",
    "password": "another-password",
    "hostname": "sub.another-domain.com"
  }
]`
	assert.Equal(t, expected, Example())
}
