package cactive

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/qdm12/gosettings"
)

// DefaultBaseURL is the production URL of the API.
const DefaultBaseURL = "https://hypixel.cactive.network/api/v3"

// Rate limits enforced by the API for a standard key,
// also documented in the repository README.
const (
	// DefaultRatePerMinute is the sustained number of
	// requests allowed per minute.
	DefaultRatePerMinute uint32 = 120
	// DefaultRateBurst is the number of requests allowed
	// in a short burst.
	DefaultRateBurst uint32 = 20
)

// Settings are the client creation settings.
type Settings struct {
	// HTTPClient is the HTTP client to use.
	// It defaults to http.DefaultClient if left unset.
	HTTPClient *http.Client
	// BaseURL is the base URL of the API and defaults
	// to DefaultBaseURL. It is settable mostly for tests.
	BaseURL string
	// Key is the API key and can be empty, in which case
	// only the key endpoint returns meaningful data.
	Key string
	// Cache defaults to true and asks the API to serve
	// its server side cached data.
	Cache *bool
	// RatePerMinute is the sustained number of requests
	// per minute the client allows before blocking, and
	// defaults to DefaultRatePerMinute.
	RatePerMinute *uint32
	// RateBurst is the number of requests allowed in a
	// burst and defaults to DefaultRateBurst.
	RateBurst *uint32
	// DebugLogger logs every request and response when
	// set, and defaults to no logging.
	DebugLogger DebugLogger
}

func (s *Settings) SetDefaults() {
	if s.HTTPClient == nil {
		s.HTTPClient = http.DefaultClient
	}
	s.BaseURL = gosettings.DefaultComparable(s.BaseURL, DefaultBaseURL)
	s.Cache = gosettings.DefaultPointer(s.Cache, true)
	s.RatePerMinute = gosettings.DefaultPointer(s.RatePerMinute, DefaultRatePerMinute)
	s.RateBurst = gosettings.DefaultPointer(s.RateBurst, DefaultRateBurst)
}

func (s Settings) Validate() (err error) {
	baseURL, err := url.Parse(s.BaseURL)
	if err != nil {
		return fmt.Errorf("base URL: %w", err)
	}

	switch baseURL.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("%w: scheme %q", ErrBaseURLNotValid, baseURL.Scheme)
	}

	if *s.RatePerMinute == 0 {
		return fmt.Errorf("%w: rate per minute cannot be zero", ErrRateNotValid)
	} else if *s.RateBurst == 0 {
		return fmt.Errorf("%w: rate burst cannot be zero", ErrRateNotValid)
	}

	return nil
}
