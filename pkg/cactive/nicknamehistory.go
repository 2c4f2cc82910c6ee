package cactive

import (
	"context"
	"fmt"
)

// NicknameHistory retrieves the players having used the nickname
// given, in ascending order of usage time.
func (c *Client) NicknameHistory(ctx context.Context, nickname string) (
	history []NicknameHistory, err error) {
	if nickname == "" {
		return nil, fmt.Errorf("%w", ErrNicknameNotSet)
	}

	values := c.commonValues()
	values.Set("nickname", nickname)
	history, err = fetch[[]NicknameHistory](ctx, c, "/nickname-history", values)
	if err != nil {
		return nil, fmt.Errorf("for nickname %s: %w", nickname, err)
	}
	return history, nil
}
