// Package json implements a JSON file cache of API lookup
// results and key check outcomes.
package json

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Database struct {
	data     dataModel
	filepath string
	sync.RWMutex
}

// NewDatabase opens or creates the JSON file database
// in the data directory given.
func NewDatabase(dataDir string) (db *Database, err error) {
	db = &Database{
		filepath: filepath.Join(dataDir, "cache.json"),
	}

	data, err := os.ReadFile(db.filepath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading database file: %w", err)
		}
		err = db.write()
		if err != nil {
			return nil, fmt.Errorf("creating database file: %w", err)
		}
		return db, nil
	}

	err = json.Unmarshal(data, &db.data)
	if err != nil {
		return nil, fmt.Errorf("decoding database file: %w", err)
	}

	err = db.Check()
	if err != nil {
		return nil, fmt.Errorf("%s validation error: %w", db.filepath, err)
	}

	return db, nil
}

var (
	ErrEndpointEmpty     = errors.New("endpoint is empty")
	ErrFetchedAtEmpty    = errors.New("fetch time is empty")
	ErrChecksMisordered  = errors.New("key checks are not ordered correctly by time")
	ErrCheckTimeEmpty    = errors.New("time of key check is empty")
	ErrResponseDataEmpty = errors.New("response data is empty")
)

func (db *Database) Check() error {
	for _, entry := range db.data.Entries {
		switch {
		case entry.Endpoint == "":
			return fmt.Errorf("%w: for entry %s", ErrEndpointEmpty, entry)
		case entry.FetchedAt.IsZero():
			return fmt.Errorf("%w: for entry %s", ErrFetchedAtEmpty, entry)
		case len(entry.Response) == 0:
			return fmt.Errorf("%w: for entry %s", ErrResponseDataEmpty, entry)
		}
	}

	var previousTime time.Time
	for i, check := range db.data.KeyChecks {
		if check.Time.IsZero() {
			return fmt.Errorf("%w: key check %d of %d",
				ErrCheckTimeEmpty, i+1, len(db.data.KeyChecks))
		} else if check.Time.Before(previousTime) {
			return fmt.Errorf("%w", ErrChecksMisordered)
		}
		previousTime = check.Time
	}

	return nil
}

func (db *Database) write() error {
	data, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return err
	}
	const permissions = os.FileMode(0o600)
	return os.WriteFile(db.filepath, data, permissions)
}

func (db *Database) String() string {
	return "cache database"
}

// Start implements goservices.Service, the database being
// ready as soon as it is opened.
func (db *Database) Start(_ context.Context) (runError <-chan error, startErr error) {
	return nil, nil //nolint:nilnil
}

// Stop flushes the database to file.
func (db *Database) Stop() (err error) {
	db.Lock() // ensure a write operation finishes
	defer db.Unlock()
	return db.write()
}
