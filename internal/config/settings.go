package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client     Client
	Update     Update
	PubIP      PubIP
	Verify     Verify
	SelfUpdate SelfUpdate
	Health     Health
	Paths      Paths
	Logger     Logger
	Shoutrrr   Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Update.setDefaults()
	c.PubIP.setDefaults()
	c.Verify.setDefaults()
	c.SelfUpdate.setDefaults()
	c.Health.setDefaults()
	c.Paths.setDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":      &c.Client,
		"update":      &c.Update,
		"public ip":   &c.PubIP,
		"verify":      &c.Verify,
		"self update": &c.SelfUpdate,
		"health":      &c.Health,
		"paths":       &c.Paths,
		"logger":      &c.Logger,
		"shoutrrr":    &c.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Update.toLinesNode())
	node.AppendNode(c.PubIP.toLinesNode())
	node.AppendNode(c.Verify.toLinesNode())
	node.AppendNode(c.SelfUpdate.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader,
	warner Warner) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.Update.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading update settings: %w", err)
	}

	c.PubIP.read(reader)

	err = c.Verify.read(reader)
	if err != nil {
		return fmt.Errorf("reading verify settings: %w", err)
	}

	c.SelfUpdate.read(reader)
	c.Health.read(reader)
	c.Paths.read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
