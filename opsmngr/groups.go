package opsmngr

import "context"

// GetGroups lists the groups the API user has access to.
func (c *Client) GetGroups(ctx context.Context) (Entity, error) {
	return c.call(ctx, OpGetGroups, nil, nil, nil)
}

// GetGroup fetches a single group by its ID.
func (c *Client) GetGroup(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetGroup, []string{groupID}, nil, nil)
}

// GetGroupByName fetches a single group by its name.
func (c *Client) GetGroupByName(ctx context.Context, groupName string) (Entity, error) {
	return c.call(ctx, OpGetGroupByName, []string{groupName}, nil, nil)
}

// CreateGroup creates a group. The name must be unique within the
// deployment.
func (c *Client) CreateGroup(ctx context.Context, groupName string) (Entity, error) {
	if groupName == "" {
		return nil, &InvalidParameterError{Op: OpCreateGroup, Params: []string{"groupName"}}
	}
	return c.call(ctx, OpCreateGroup, nil, nil, Entity{"name": groupName})
}

// DeleteGroup removes a group.
func (c *Client) DeleteGroup(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpDeleteGroup, []string{groupID}, nil, nil)
}

// GetGroupUsers lists the users that are members of the group.
func (c *Client) GetGroupUsers(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetGroupUsers, []string{groupID}, nil, nil)
}

// AddUsersToGroup adds the given users, each carrying its roles, to the
// group. The slice must not be empty.
func (c *Client) AddUsersToGroup(ctx context.Context, groupID string, users []Entity) (Entity, error) {
	if len(users) == 0 {
		return nil, &InvalidParameterError{Op: OpAddUsersToGroup, Params: []string{"users"}}
	}
	return c.call(ctx, OpAddUsersToGroup, []string{groupID}, nil, users)
}

// RemoveUserFromGroup removes a user, identified by user ID, from the
// group.
func (c *Client) RemoveUserFromGroup(ctx context.Context, groupID, userID string) (Entity, error) {
	return c.call(ctx, OpRemoveUserFromGroup, []string{groupID, userID}, nil, nil)
}
