package update

import (
	"context"

	"github.com/qdm12/dynhost-updater/internal/healthchecksio"
	"github.com/qdm12/dynhost-updater/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . RecordsReader,PublicIPFetcher,Cache,Printer,Logger,ShoutrrrClient,HealthchecksIOClient,DNSChecker

type RecordsReader interface {
	JSONRecords(filePath string) (records []models.Record, warnings []string, err error)
}

type PublicIPFetcher interface {
	IP(ctx context.Context) (ip string, err error)
}

type Cache interface {
	Changed(ip string) bool
	Save(ip string) (err error)
}

type Printer interface {
	Success(hostname, ip string)
	NoChange(hostname, ip string)
	Unrecognized(hostname, response string)
	Rejected(hostname string, err error)
	Errored(hostname string, err error)
	ConfigMissing(path, example string)
	Summary(succeeded bool)
}

type Logger interface {
	Infoer
	Debug(s string)
	Warn(s string)
	Error(s string)
}

type ShoutrrrClient interface {
	Notify(message string)
}

type HealthchecksIOClient interface {
	Ping(ctx context.Context, state healthchecksio.State) (err error)
}

type DNSChecker interface {
	Check(ctx context.Context, hostname, ip string) (err error)
}
