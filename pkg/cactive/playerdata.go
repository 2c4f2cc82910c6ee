package cactive

import (
	"context"
	"fmt"
)

// PlayerData retrieves the data of the player with the
// Minecraft UUID given.
func (c *Client) PlayerData(ctx context.Context, uuid string) (
	data PlayerData, err error) {
	if uuid == "" {
		return data, fmt.Errorf("%w", ErrUUIDNotSet)
	}

	values := c.commonValues()
	values.Set("uuid", uuid)
	data, err = fetch[PlayerData](ctx, c, "/player-data", values)
	if err != nil {
		return data, fmt.Errorf("for uuid %s: %w", uuid, err)
	}
	return data, nil
}
