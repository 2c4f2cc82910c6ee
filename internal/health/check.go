package health

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// MakeIsHealthy creates a health check function returning an
// error when the last key check failed, or when the API host
// does not resolve.
func MakeIsHealthy(db KeyCheckGetter, resolver LookupIPer,
	apiURL string) func() error {
	apiHost := "hypixel.cactive.network"
	parsedURL, err := url.Parse(apiURL)
	if err == nil && parsedURL.Hostname() != "" {
		apiHost = parsedURL.Hostname()
	}

	return func() (err error) {
		check, ok := db.LastKeyCheck()
		if ok && !check.Success {
			return fmt.Errorf("last key check failed: %s", check.Message)
		}

		const timeout = 5 * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, err = resolver.LookupIP(ctx, "ip", apiHost)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", apiHost, err)
		}

		return nil
	}
}
