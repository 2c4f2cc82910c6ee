package json

import (
	"encoding/json"
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
)

// GetResponse returns the cached response for the endpoint and
// query given, if one exists and was fetched within maxAge of now.
func (db *Database) GetResponse(endpoint, query string,
	maxAge time.Duration, now time.Time) (
	response json.RawMessage, ok bool) {
	db.RLock()
	defer db.RUnlock()

	for _, entry := range db.data.Entries {
		if entry.Endpoint != endpoint || entry.Query != query {
			continue
		}
		if now.Sub(entry.FetchedAt) > maxAge {
			return nil, false
		}
		return entry.Response, true
	}
	return nil, false
}

// StoreResponse stores a response for the endpoint and query
// given, replacing any previous entry for the same key.
func (db *Database) StoreResponse(endpoint, query string,
	response json.RawMessage, now time.Time) (err error) {
	db.Lock()
	defer db.Unlock()

	targetIndex := -1
	for i, entry := range db.data.Entries {
		if entry.Endpoint == endpoint && entry.Query == query {
			targetIndex = i
			break
		}
	}

	entryNotFound := targetIndex == -1
	if entryNotFound {
		db.data.Entries = append(db.data.Entries, entry{
			Endpoint: endpoint,
			Query:    query,
		})
		targetIndex = len(db.data.Entries) - 1
	}

	db.data.Entries[targetIndex].Response = response
	db.data.Entries[targetIndex].FetchedAt = now
	return db.write()
}

// StoreKeyCheck appends a key check outcome, keeping only the
// most recent checks.
func (db *Database) StoreKeyCheck(check models.KeyCheck) (err error) {
	db.Lock()
	defer db.Unlock()

	const maxKeyChecks = 100
	db.data.KeyChecks = append(db.data.KeyChecks, check)
	if len(db.data.KeyChecks) > maxKeyChecks {
		db.data.KeyChecks = db.data.KeyChecks[len(db.data.KeyChecks)-maxKeyChecks:]
	}
	return db.write()
}

// LastKeyCheck returns the most recent key check outcome,
// with ok false when no check ran yet.
func (db *Database) LastKeyCheck() (check models.KeyCheck, ok bool) {
	db.RLock()
	defer db.RUnlock()

	if len(db.data.KeyChecks) == 0 {
		return check, false
	}
	return db.data.KeyChecks[len(db.data.KeyChecks)-1], true
}

// KeyChecks returns all the stored key check outcomes from
// oldest to newest.
func (db *Database) KeyChecks() (checks []models.KeyCheck) {
	db.RLock()
	defer db.RUnlock()
	return append(checks, db.data.KeyChecks...)
}
