// Package healthchecksio implements a client to ping
// healthchecks.io about the state of the key watchdog.
package healthchecksio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// New creates a healthchecks.io client for the key watchdog.
// An empty uuid makes every Ping a no-op, for deployments
// without a healthchecks.io check configured.
func New(httpClient *http.Client, baseURL, uuid string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		uuid:       uuid,
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	uuid       string
}

var (
	ErrStatusCode = errors.New("bad status code")
)

// State is the key watchdog state reported to
// healthchecks.io: Ok and Fail after each key check,
// Exit0 and Exit1 when the program stops.
type State string

const (
	Ok    State = "ok"
	Start State = "start"
	Fail  State = "fail"
	Exit0 State = "0"
	Exit1 State = "1"
)

// Ping signals the state given to healthchecks.io.
func (c *Client) Ping(ctx context.Context, state State) (err error) {
	if c.uuid == "" {
		return nil
	}

	pingURL := c.baseURL + "/" + c.uuid
	if state != Ok {
		pingURL += "/" + string(state)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, pingURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		_ = response.Body.Close()
		return fmt.Errorf("%w: %d %s", ErrStatusCode,
			response.StatusCode, response.Status)
	}

	err = response.Body.Close()
	if err != nil {
		return fmt.Errorf("closing response body: %w", err)
	}

	return nil
}
