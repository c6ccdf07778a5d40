package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/qdm12/dynhost-updater/internal/models"
	ddnserrors "github.com/qdm12/dynhost-updater/internal/provider/errors"
	"github.com/qdm12/dynhost-updater/internal/provider/utils"
)

var ErrConfigNotFound = errors.New("config file not found")

// JSONRecords reads the records from the JSON array in the file at filePath.
// Records are returned in file order and verbatim: records with missing
// or malformed fields only produce warnings.
func (r *Reader) JSONRecords(filePath string) (
	records []models.Record, warnings []string, err error) {
	b, err := r.readFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
		}
		return nil, nil, fmt.Errorf("reading config file: %w", err)
	}

	err = json.Unmarshal(b, &records)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding config file %s: %w", filePath, err)
	}

	for i, record := range records {
		err = checkRecord(record)
		if err != nil {
			warnings = append(warnings, "record "+strconv.Itoa(i+1)+
				" of "+strconv.Itoa(len(records))+" "+record.String()+": "+err.Error())
		}
	}

	return records, warnings, nil
}

func checkRecord(record models.Record) (err error) {
	switch {
	case record.Username == "":
		return fmt.Errorf("%w", ddnserrors.ErrUsernameNotSet)
	case record.Password == "":
		return fmt.Errorf("%w", ddnserrors.ErrPasswordNotSet)
	}
	return utils.CheckHostname(record.Hostname)
}
