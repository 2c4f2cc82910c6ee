package config

import (
	"fmt"
	"net"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Resolver struct {
	// Address is the custom DNS resolver address to use,
	// in the form ip:port. Leave empty to use the system
	// resolver.
	Address *string
	Timeout time.Duration
}

func (r *Resolver) setDefaults() {
	r.Address = gosettings.DefaultPointer(r.Address, "")
	const defaultTimeout = 5 * time.Second
	r.Timeout = gosettings.DefaultComparable(r.Timeout, defaultTimeout)
}

func (r Resolver) Validate() (err error) {
	if *r.Address == "" {
		return nil
	}

	_, _, err = net.SplitHostPort(*r.Address)
	if err != nil {
		return fmt.Errorf("splitting host and port: %w", err)
	}

	return nil
}

func (r Resolver) String() string {
	return r.toLinesNode().String()
}

func (r Resolver) toLinesNode() *gotree.Node {
	if *r.Address == "" {
		return gotree.New("Resolver: system")
	}
	node := gotree.New("Resolver")
	node.Appendf("Address: %s", *r.Address)
	node.Appendf("Timeout: %s", r.Timeout)
	return node
}

func (r *Resolver) read(reader *reader.Reader) (err error) {
	r.Address = reader.Get("RESOLVER_ADDRESS")
	r.Timeout, err = reader.Duration("RESOLVER_TIMEOUT")
	return err
}
