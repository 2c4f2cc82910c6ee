package cactive

import (
	"context"
	"fmt"
)

// PunishmentData retrieves the punishment with the ID given,
// for example "C256D602".
func (c *Client) PunishmentData(ctx context.Context, id string) (
	data PunishmentData, err error) {
	if id == "" {
		return data, fmt.Errorf("%w", ErrPunishmentIDNotSet)
	}

	values := c.commonValues()
	values.Set("id", id)
	data, err = fetch[PunishmentData](ctx, c, "/punishment-data", values)
	if err != nil {
		return data, fmt.Errorf("for punishment id %s: %w", id, err)
	}
	return data, nil
}
