package cactive

import (
	"context"
	"fmt"
)

// StaffFilter filters the staff tracker endpoint results.
type StaffFilter string

const (
	StaffFilterAll     StaffFilter = "all"
	StaffFilterOnline  StaffFilter = "online"
	StaffFilterOffline StaffFilter = "offline"
)

// ParseStaffFilter parses the string given as a staff filter.
// An empty string parses as StaffFilterAll.
func ParseStaffFilter(s string) (filter StaffFilter, err error) {
	switch StaffFilter(s) {
	case "":
		return StaffFilterAll, nil
	case StaffFilterAll, StaffFilterOnline, StaffFilterOffline:
		return StaffFilter(s), nil
	default:
		return "", fmt.Errorf(`%w: %q must be one of "all", "online" or "offline"`,
			ErrFilterNotValid, s)
	}
}

// StaffTracker retrieves the Hypixel staff members matching the
// filter given, in ascending order.
func (c *Client) StaffTracker(ctx context.Context, filter StaffFilter) (
	staff []StaffMember, err error) {
	filter, err = ParseStaffFilter(string(filter))
	if err != nil {
		return nil, err
	}

	values := c.commonValues()
	values.Set("filter", string(filter))
	staff, err = fetch[[]StaffMember](ctx, c, "/staff-tracker", values)
	if err != nil {
		return nil, fmt.Errorf("for filter %s: %w", filter, err)
	}
	return staff, nil
}
