package params

import (
	"encoding/json"

	"github.com/qdm12/dynhost-updater/internal/models"
)

// Example returns an example records file content.
func Example() string {
	records := []models.Record{
		{
			Username: "your-ovh-username",
			Password: "your-ovh-password",
			Hostname: "your-domain.com",
		},
		{
			Username: "another-user",
			Password: "another-password",
			Hostname: "sub.another-domain.com",
		},
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(b)
}
