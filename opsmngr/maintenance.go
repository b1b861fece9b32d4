package opsmngr

import "context"

// Maintenance windows are an Ops Manager feature; every operation in this
// file fails with UnsupportedOperationError on a CloudManager client.

// GetMaintenanceWindows lists the maintenance windows of the group whose
// end date lies in the future.
func (c *Client) GetMaintenanceWindows(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetMaintenanceWindows, []string{groupID}, nil, nil)
}

// GetMaintenanceWindow fetches a single maintenance window by its ID.
func (c *Client) GetMaintenanceWindow(ctx context.Context, groupID, windowID string) (Entity, error) {
	return c.call(ctx, OpGetMaintenanceWindow, []string{groupID, windowID}, nil, nil)
}

// CreateMaintenanceWindow creates a maintenance window during which alerts
// of the named types are suppressed.
func (c *Client) CreateMaintenanceWindow(ctx context.Context, groupID string, window Entity) (Entity, error) {
	if err := requireFields(OpCreateMaintenanceWindow, "window", window,
		"startDate", "endDate", "alertTypeNames"); err != nil {
		return nil, err
	}
	return c.call(ctx, OpCreateMaintenanceWindow, []string{groupID}, nil, window)
}

// UpdateMaintenanceWindow updates an existing maintenance window. The
// document must carry its id.
func (c *Client) UpdateMaintenanceWindow(ctx context.Context, groupID string, window Entity) (Entity, error) {
	if err := requireFields(OpUpdateMaintenanceWindow, "window", window,
		"id", "startDate", "endDate", "alertTypeNames"); err != nil {
		return nil, err
	}
	return c.call(ctx, OpUpdateMaintenanceWindow, []string{groupID, window.ID()}, nil, window)
}

// DeleteMaintenanceWindow removes a maintenance window.
func (c *Client) DeleteMaintenanceWindow(ctx context.Context, groupID, windowID string) (Entity, error) {
	return c.call(ctx, OpDeleteMaintenanceWindow, []string{groupID, windowID}, nil, nil)
}
