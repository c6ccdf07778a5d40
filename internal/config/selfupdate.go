package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type SelfUpdate struct {
	// Repository is the owner/name of the repository
	// publishing the releases.
	Repository string
	APIURL     string
}

func (s *SelfUpdate) setDefaults() {
	s.Repository = gosettings.DefaultComparable(s.Repository, "qdm12/dynhost-updater")
	s.APIURL = gosettings.DefaultComparable(s.APIURL, "https://api.github.com")
}

var (
	ErrRepositoryNotValid = errors.New("repository is not valid")
	ErrAPIURLNotValid     = errors.New("API URL is not valid")
)

func (s SelfUpdate) Validate() (err error) {
	owner, name, found := strings.Cut(s.Repository, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q must be in the form owner/name",
			ErrRepositoryNotValid, s.Repository)
	}

	apiURL, err := url.Parse(s.APIURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAPIURLNotValid, err)
	} else if apiURL.Scheme != "https" && apiURL.Scheme != "http" {
		return fmt.Errorf("%w: scheme %q is not http or https", ErrAPIURLNotValid, apiURL.Scheme)
	}

	return nil
}

func (s SelfUpdate) String() string {
	return s.toLinesNode().String()
}

func (s SelfUpdate) toLinesNode() *gotree.Node {
	node := gotree.New("Self update")
	node.Appendf("Repository: %s", s.Repository)
	node.Appendf("API URL: %s", s.APIURL)
	return node
}

func (s *SelfUpdate) read(r *reader.Reader) {
	s.Repository = r.String("SELFUPDATE_REPOSITORY", reader.ForceLowercase(false))
	s.APIURL = r.String("SELFUPDATE_API_URL", reader.ForceLowercase(false))
}
