package opsmngr

import "context"

// GetClusters lists the clusters discovered in the group.
func (c *Client) GetClusters(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetClusters, []string{groupID}, nil, nil)
}

// GetCluster fetches a cluster by its ID.
func (c *Client) GetCluster(ctx context.Context, groupID, clusterID string) (Entity, error) {
	return c.call(ctx, OpGetCluster, []string{groupID, clusterID}, nil, nil)
}

// RenameCluster sets the display name of the cluster. The name is the only
// cluster property the API allows to change.
func (c *Client) RenameCluster(ctx context.Context, groupID, clusterID, clusterName string) (Entity, error) {
	if clusterName == "" {
		return nil, &InvalidParameterError{Op: OpRenameCluster, Params: []string{"clusterName"}}
	}
	return c.call(ctx, OpRenameCluster, []string{groupID, clusterID}, nil, Entity{"clusterName": clusterName})
}
