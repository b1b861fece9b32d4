package opsmngr

import "context"

// GetAutomationConfig fetches the automation configuration of the group.
func (c *Client) GetAutomationConfig(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetAutomationConfig, []string{groupID}, nil, nil)
}

// UpdateAutomationConfig replaces the automation configuration of the
// group. Fetch the current configuration first and modify it rather than
// building one from scratch; the automation agents apply whatever is
// stored here.
func (c *Client) UpdateAutomationConfig(ctx context.Context, groupID string, config Entity) (Entity, error) {
	if len(config) == 0 {
		return nil, &InvalidParameterError{Op: OpUpdateAutomationConfig, Params: []string{"config"}}
	}
	return c.call(ctx, OpUpdateAutomationConfig, []string{groupID}, nil, config)
}

// GetAutomationStatus reports how far each automation agent in the group
// has progressed toward the goal configuration.
func (c *Client) GetAutomationStatus(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetAutomationStatus, []string{groupID}, nil, nil)
}
