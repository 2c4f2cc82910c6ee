package models

import (
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/pkg/cactive"
)

// KeyCheck is the outcome of one key watchdog cycle.
type KeyCheck struct {
	// Time is when the check ran.
	Time time.Time `json:"time"`
	// Success is false when the key data could not be fetched.
	Success bool `json:"success"`
	// Message holds the error message when Success is false.
	Message string `json:"message,omitempty"`
	// KeyData is the data fetched, zero when Success is false.
	KeyData cactive.KeyData `json:"key_data"`
}

// DownEndpoints returns the IDs of the endpoints the key
// cannot reach.
func (k KeyCheck) DownEndpoints() (ids []string) {
	for _, endpoint := range k.KeyData.Endpoints {
		if !endpoint.Status {
			ids = append(ids, endpoint.ID)
		}
	}
	return ids
}

// ExpiresWithin returns true together with the expiry time when
// the key expires within the duration given from now.
func (k KeyCheck) ExpiresWithin(now time.Time, duration time.Duration) (
	expiring bool, expiresAt time.Time) {
	if k.KeyData.ExpiresAt == nil || *k.KeyData.ExpiresAt == "" {
		return false, expiresAt
	}

	expiresAt, err := time.Parse(time.RFC3339, *k.KeyData.ExpiresAt)
	if err != nil {
		return false, expiresAt
	}

	return expiresAt.Sub(now) <= duration, expiresAt
}
