// Package cactive implements a typed HTTP client for the
// CactiveNetwork Hypixel API v3 available at
// https://hypixel.cactive.network/api/v3.
package cactive

import (
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

// Client queries the CactiveNetwork Hypixel API.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    url.URL
	key        string
	cache      bool
	limiter    *rate.Limiter
}

// New creates a client from the settings given.
// Unset settings fields default as described in the
// Settings documentation.
func New(settings Settings) (client *Client, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	// already validated
	baseURL, err := url.Parse(settings.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	httpClient := settings.HTTPClient
	if settings.DebugLogger != nil {
		httpClient = makeLogClient(httpClient, settings.DebugLogger)
	}

	const secondsPerMinute = 60
	limit := rate.Limit(float64(*settings.RatePerMinute) / secondsPerMinute)
	limiter := rate.NewLimiter(limit, int(*settings.RateBurst))

	return &Client{
		httpClient: httpClient,
		baseURL:    *baseURL,
		key:        settings.Key,
		cache:      *settings.Cache,
		limiter:    limiter,
	}, nil
}

// commonValues returns the query parameters common to
// all endpoints taking a key and a cache parameter.
func (c *Client) commonValues() (values url.Values) {
	values = url.Values{}
	values.Set("key", c.key)
	cacheString := "false"
	if c.cache {
		cacheString = "true"
	}
	values.Set("cache", cacheString)
	return values
}

func setHeaders(request *http.Request) {
	request.Header.Set("User-Agent",
		"Cactive-Hypixel-API github.com/cactivenetwork/cactive-hypixel-api")
	request.Header.Set("Accept", "application/json")
}
