package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Paths struct {
	ConfigFile *string
	CacheFile  *string
}

func (p *Paths) setDefaults() {
	p.ConfigFile = gosettings.DefaultPointer(p.ConfigFile, "./config.json")
	p.CacheFile = gosettings.DefaultPointer(p.CacheFile, "./last_ip.txt")
}

func (p Paths) Validate() (err error) {
	return nil
}

func (p Paths) String() string {
	return p.toLinesNode().String()
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	node.Appendf("Config file: %s", *p.ConfigFile)
	node.Appendf("Cache file: %s", *p.CacheFile)
	return node
}

func (p *Paths) read(r *reader.Reader) {
	p.ConfigFile = r.Get("CONFIG_FILE", reader.ForceLowercase(false))
	p.CacheFile = r.Get("CACHE_FILE", reader.ForceLowercase(false))
}
