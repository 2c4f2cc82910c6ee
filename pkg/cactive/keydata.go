package cactive

import (
	"context"
	"fmt"
	"net/url"
)

// KeyData retrieves the data of the API key the client was
// created with, including the endpoints it can reach.
func (c *Client) KeyData(ctx context.Context) (data KeyData, err error) {
	values := url.Values{}
	values.Set("key", c.key)
	data, err = fetch[KeyData](ctx, c, "/key", values)
	if err != nil {
		return data, fmt.Errorf("for key: %w", err)
	}
	return data, nil
}
