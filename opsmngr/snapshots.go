package opsmngr

import (
	"context"
	"net/url"
)

// GetSnapshots lists the backup snapshots of a cluster.
func (c *Client) GetSnapshots(ctx context.Context, groupID, clusterID string) (Entity, error) {
	return c.call(ctx, OpGetSnapshots, []string{groupID, clusterID}, nil, nil)
}

// GetSnapshot fetches a single backup snapshot.
func (c *Client) GetSnapshot(ctx context.Context, groupID, clusterID, snapshotID string) (Entity, error) {
	return c.call(ctx, OpGetSnapshot, []string{groupID, clusterID, snapshotID}, nil, nil)
}

// DeleteSnapshot removes a backup snapshot.
func (c *Client) DeleteSnapshot(ctx context.Context, groupID, clusterID, snapshotID string) (Entity, error) {
	return c.call(ctx, OpDeleteSnapshot, []string{groupID, clusterID, snapshotID}, nil, nil)
}

// GetCheckpoints lists the cluster checkpoints of a sharded cluster.
// Ops Manager only.
func (c *Client) GetCheckpoints(ctx context.Context, groupID, clusterID string) (Entity, error) {
	return c.call(ctx, OpGetCheckpoints, []string{groupID, clusterID}, nil, nil)
}

// GetCheckpoint fetches a single cluster checkpoint. Ops Manager only.
func (c *Client) GetCheckpoint(ctx context.Context, groupID, clusterID, checkpointID string) (Entity, error) {
	return c.call(ctx, OpGetCheckpoint, []string{groupID, clusterID, checkpointID}, nil, nil)
}

// GetRestoreJobs lists the restore jobs of a cluster. Pass a non-empty
// batchID to narrow the list to one sharded-cluster restore batch.
func (c *Client) GetRestoreJobs(ctx context.Context, groupID, clusterID, batchID string) (Entity, error) {
	var query url.Values
	if batchID != "" {
		query = url.Values{"batchId": {batchID}}
	}
	return c.call(ctx, OpGetRestoreJobs, []string{groupID, clusterID}, query, nil)
}

// GetRestoreJob fetches a single restore job of a cluster.
func (c *Client) GetRestoreJob(ctx context.Context, groupID, clusterID, jobID string) (Entity, error) {
	return c.call(ctx, OpGetRestoreJob, []string{groupID, clusterID, jobID}, nil, nil)
}

// CreateRestoreJob requests a restore of a cluster. The document must
// identify the point to restore from: a snapshotId, a checkpointId, or a
// timestamp with date and increment. SCP delivery additionally needs the
// target hostname, port and directory.
func (c *Client) CreateRestoreJob(ctx context.Context, groupID, clusterID string, job Entity) (Entity, error) {
	if err := validateRestorePoint(OpCreateRestoreJob, job); err != nil {
		return nil, err
	}
	return c.call(ctx, OpCreateRestoreJob, []string{groupID, clusterID}, nil, job)
}

// GetHostRestoreJobs lists the restore jobs of a legacy mirrored config
// server.
func (c *Client) GetHostRestoreJobs(ctx context.Context, groupID, hostID string) (Entity, error) {
	return c.call(ctx, OpGetHostRestoreJobs, []string{groupID, hostID}, nil, nil)
}

// GetHostRestoreJob fetches a single restore job of a legacy mirrored
// config server.
func (c *Client) GetHostRestoreJob(ctx context.Context, groupID, hostID, jobID string) (Entity, error) {
	return c.call(ctx, OpGetHostRestoreJob, []string{groupID, hostID, jobID}, nil, nil)
}

// CreateHostRestoreJob requests a restore of a legacy mirrored config
// server from the given snapshot.
func (c *Client) CreateHostRestoreJob(ctx context.Context, groupID, hostID string, job Entity) (Entity, error) {
	if err := requireFields(OpCreateHostRestoreJob, "job", job, "snapshotId"); err != nil {
		return nil, err
	}
	return c.call(ctx, OpCreateHostRestoreJob, []string{groupID, hostID}, nil, job)
}

// validateRestorePoint enforces the restore-point contract of the restore
// jobs endpoint before any I/O happens.
func validateRestorePoint(op Op, job Entity) error {
	if len(job) == 0 {
		return &InvalidParameterError{Op: op, Params: []string{"job"}}
	}

	_, hasSnapshot := job["snapshotId"]
	_, hasCheckpoint := job["checkpointId"]
	ts, hasTimestamp := job["timestamp"]
	if !hasSnapshot && !hasCheckpoint && !hasTimestamp {
		return &InvalidParameterError{
			Op:     op,
			Params: []string{"job.snapshotId", "job.checkpointId", "job.timestamp"},
		}
	}

	if hasTimestamp {
		tsDoc, ok := ts.(map[string]any)
		if !ok {
			return &InvalidParameterError{Op: op, Params: []string{"job.timestamp"}}
		}
		if err := requireFields(op, "job.timestamp", Entity(tsDoc), "date", "increment"); err != nil {
			return err
		}
	}

	if delivery, ok := job["delivery"].(map[string]any); ok {
		d := Entity(delivery)
		if d.Str("methodName") == "SCP" {
			return requireFields(op, "job.delivery", d, "hostname", "port", "targetDirectory")
		}
	}

	return nil
}
