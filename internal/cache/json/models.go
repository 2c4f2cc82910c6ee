package json

import (
	"encoding/json"
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
)

type dataModel struct {
	Entries   []entry           `json:"entries"`
	KeyChecks []models.KeyCheck `json:"key_checks"`
}

// entry is one cached API response, keyed by endpoint and query.
type entry struct {
	Endpoint  string          `json:"endpoint"`
	Query     string          `json:"query,omitempty"`
	Response  json.RawMessage `json:"response"`
	FetchedAt time.Time       `json:"fetched_at"`
}

func (e entry) String() string {
	b, err := json.Marshal(struct {
		Endpoint  string    `json:"endpoint"`
		Query     string    `json:"query,omitempty"`
		FetchedAt time.Time `json:"fetched_at"`
	}{e.Endpoint, e.Query, e.FetchedAt})
	if err != nil {
		panic(err)
	}

	return string(b)
}
