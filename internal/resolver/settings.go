package resolver

import (
	"fmt"
	"net"
	"time"

	"github.com/qdm12/gosettings"
)

type Settings struct {
	// Address is the DNS server address in the form ip:port.
	// Leave empty to use the system resolver.
	Address *string
	Timeout time.Duration
}

func (s *Settings) setDefaults() {
	s.Address = gosettings.DefaultPointer(s.Address, "")
	const defaultTimeout = 5 * time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
}

func (s Settings) validate() (err error) {
	if *s.Address == "" {
		return nil
	}

	_, _, err = net.SplitHostPort(*s.Address)
	if err != nil {
		return fmt.Errorf("splitting host and port: %w", err)
	}

	return nil
}
