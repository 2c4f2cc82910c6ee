package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Server struct {
	Enabled          *bool
	ListeningAddress string
	RootURL          string
	// CacheMaxAge is the maximum age of a cached API response
	// the server serves before fetching a fresh one.
	CacheMaxAge *time.Duration
}

func (s *Server) setDefaults() {
	s.Enabled = gosettings.DefaultPointer(s.Enabled, true)
	s.ListeningAddress = gosettings.DefaultComparable(s.ListeningAddress, ":8000")
	s.RootURL = gosettings.DefaultComparable(s.RootURL, "/")
	const defaultCacheMaxAge = 5 * time.Minute
	s.CacheMaxAge = gosettings.DefaultPointer(s.CacheMaxAge, defaultCacheMaxAge)
}

var ErrCacheMaxAgeNegative = errors.New("cache max age cannot be negative")

func (s Server) Validate() (err error) {
	err = validate.ListeningAddress(s.ListeningAddress, os.Getuid())
	if err != nil {
		return fmt.Errorf("listening address: %w", err)
	}

	if *s.CacheMaxAge < 0 {
		return fmt.Errorf("%w: %s", ErrCacheMaxAgeNegative, *s.CacheMaxAge)
	}

	return nil
}

func (s Server) String() string {
	return s.toLinesNode().String()
}

func (s Server) toLinesNode() *gotree.Node {
	if !*s.Enabled {
		return gotree.New("Server: disabled")
	}
	node := gotree.New("Server")
	node.Appendf("Listening address: %s", s.ListeningAddress)
	node.Appendf("Root URL: %s", s.RootURL)
	node.Appendf("Cache responses for up to: %s", *s.CacheMaxAge)
	return node
}

func (s *Server) read(reader *reader.Reader) (err error) {
	s.Enabled, err = reader.BoolPtr("SERVER_ENABLED")
	if err != nil {
		return err
	}

	s.RootURL = reader.String("ROOT_URL")
	s.ListeningAddress = reader.String("LISTENING_ADDRESS")

	s.CacheMaxAge, err = reader.DurationPtr("CACHE_MAX_AGE")
	if err != nil {
		return err
	}

	return nil
}
