package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Verify struct {
	Enabled         *bool
	ResolverAddress string
	Timeout         time.Duration
}

func (v *Verify) setDefaults() {
	v.Enabled = gosettings.DefaultPointer(v.Enabled, false)
	v.ResolverAddress = gosettings.DefaultComparable(v.ResolverAddress, "1.1.1.1:53")
	const defaultTimeout = 5 * time.Second
	v.Timeout = gosettings.DefaultComparable(v.Timeout, defaultTimeout)
}

var ErrResolverAddressNotValid = errors.New("resolver address is not valid")

func (v Verify) Validate() (err error) {
	_, _, err = net.SplitHostPort(v.ResolverAddress)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResolverAddressNotValid, err)
	}

	if v.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrTimeoutNotPositive, v.Timeout)
	}

	return nil
}

func (v Verify) String() string {
	return v.toLinesNode().String()
}

func (v Verify) toLinesNode() *gotree.Node {
	if !*v.Enabled {
		return gotree.New("DNS verification: disabled")
	}

	node := gotree.New("DNS verification")
	node.Appendf("Resolver address: %s", v.ResolverAddress)
	node.Appendf("Timeout: %s", v.Timeout)
	return node
}

func (v *Verify) read(r *reader.Reader) (err error) {
	v.Enabled, err = r.BoolPtr("VERIFY_DNS")
	if err != nil {
		return err
	}

	v.ResolverAddress = r.String("VERIFY_RESOLVER_ADDRESS")

	v.Timeout, err = r.Duration("VERIFY_TIMEOUT")
	return err
}
