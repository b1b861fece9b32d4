package opsmngr

import "context"

// GetMonitoringAgents lists the monitoring agents in the group.
func (c *Client) GetMonitoringAgents(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetAgents, []string{groupID, agentTypeMonitoring}, nil, nil)
}

// GetBackupAgents lists the backup agents in the group.
func (c *Client) GetBackupAgents(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetAgents, []string{groupID, agentTypeBackup}, nil, nil)
}

// GetAutomationAgents lists the automation agents in the group.
func (c *Client) GetAutomationAgents(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetAgents, []string{groupID, agentTypeAutomation}, nil, nil)
}

// GetAgents aggregates the monitoring, backup and automation agents of the
// group into a single list. The API has no combined endpoint, so this
// issues one request per agent type.
func (c *Client) GetAgents(ctx context.Context, groupID string) ([]Entity, error) {
	var agents []Entity
	for _, fetch := range []func(context.Context, string) (Entity, error){
		c.GetMonitoringAgents,
		c.GetBackupAgents,
		c.GetAutomationAgents,
	} {
		page, err := fetch(ctx, groupID)
		if err != nil {
			return nil, err
		}
		agents = append(agents, page.Results()...)
	}
	return agents, nil
}
