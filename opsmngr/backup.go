package opsmngr

import "context"

// GetBackupConfigs lists the backup configurations of the group.
func (c *Client) GetBackupConfigs(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetBackupConfigs, []string{groupID}, nil, nil)
}

// GetBackupConfig fetches the backup configuration of a cluster.
func (c *Client) GetBackupConfig(ctx context.Context, groupID, clusterID string) (Entity, error) {
	return c.call(ctx, OpGetBackupConfig, []string{groupID, clusterID}, nil, nil)
}

// UpdateBackupConfig changes the backup configuration of a cluster. The
// document must carry statusName; changing it starts, stops or terminates
// backups for the cluster.
func (c *Client) UpdateBackupConfig(ctx context.Context, groupID, clusterID string, config Entity) (Entity, error) {
	if err := requireFields(OpUpdateBackupConfig, "config", config, "statusName"); err != nil {
		return nil, err
	}
	return c.call(ctx, OpUpdateBackupConfig, []string{groupID, clusterID}, nil, config)
}

// GetSnapshotSchedule fetches the snapshot schedule of a cluster's backup.
func (c *Client) GetSnapshotSchedule(ctx context.Context, groupID, clusterID string) (Entity, error) {
	return c.call(ctx, OpGetSnapshotSchedule, []string{groupID, clusterID}, nil, nil)
}

// UpdateSnapshotSchedule changes the snapshot schedule of a cluster's
// backup.
func (c *Client) UpdateSnapshotSchedule(ctx context.Context, groupID, clusterID string, schedule Entity) (Entity, error) {
	if len(schedule) == 0 {
		return nil, &InvalidParameterError{Op: OpUpdateSnapshotSchedule, Params: []string{"schedule"}}
	}
	return c.call(ctx, OpUpdateSnapshotSchedule, []string{groupID, clusterID}, nil, schedule)
}
