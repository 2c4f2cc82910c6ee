package config

import (
	"fmt"
	"net/url"

	"github.com/cactivenetwork/cactive-hypixel-api/pkg/cactive"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type API struct {
	// Key is the CactiveNetwork API key. It can be empty,
	// in which case most endpoints return an API error.
	Key string
	// URL defaults to the production API URL and is
	// overridable mostly for development.
	URL string
	// Cache enables the API server side cache.
	Cache *bool
	// RatePerMinute is the client side sustained rate limit.
	RatePerMinute *uint32
	// RateBurst is the client side burst rate limit.
	RateBurst *uint32
}

func (a *API) setDefaults() {
	a.URL = gosettings.DefaultComparable(a.URL, cactive.DefaultBaseURL)
	a.Cache = gosettings.DefaultPointer(a.Cache, true)
	a.RatePerMinute = gosettings.DefaultPointer(a.RatePerMinute, cactive.DefaultRatePerMinute)
	a.RateBurst = gosettings.DefaultPointer(a.RateBurst, cactive.DefaultRateBurst)
}

func (a API) Validate() (err error) {
	_, err = url.Parse(a.URL)
	if err != nil {
		return fmt.Errorf("API URL: %w", err)
	}

	return nil
}

func (a API) String() string {
	return a.toLinesNode().String()
}

func (a API) toLinesNode() *gotree.Node {
	node := gotree.New("CactiveNetwork API")
	node.Appendf("URL: %s", a.URL)
	key := "[not set]"
	if a.Key != "" {
		key = gosettings.ObfuscateKey(a.Key)
	}
	node.Appendf("Key: %s", key)
	node.Appendf("Server side cache: %t", *a.Cache)
	node.Appendf("Rate limit: %d per minute, burst %d",
		*a.RatePerMinute, *a.RateBurst)
	return node
}

func (a *API) read(r *reader.Reader, warner Warner) (err error) {
	a.Key = r.String("API_KEY", reader.ForceLowercase(false))

	// Retro-compatibility
	key := r.String("KEY", reader.ForceLowercase(false))
	if key != "" {
		handleDeprecated(warner, "KEY", "API_KEY")
		a.Key = key
	}

	a.URL = r.String("API_URL", reader.ForceLowercase(false))

	a.Cache, err = r.BoolPtr("API_CACHE")
	if err != nil {
		return err
	}

	a.RatePerMinute, err = r.Uint32Ptr("RATE_PER_MINUTE")
	if err != nil {
		return err
	}

	a.RateBurst, err = r.Uint32Ptr("RATE_BURST")
	return err
}
