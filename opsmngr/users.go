package opsmngr

import "context"

// GetUser fetches a user by ID.
func (c *Client) GetUser(ctx context.Context, userID string) (Entity, error) {
	return c.call(ctx, OpGetUser, []string{userID}, nil, nil)
}

// GetUserByName fetches a user by username.
func (c *Client) GetUserByName(ctx context.Context, userName string) (Entity, error) {
	return c.call(ctx, OpGetUserByName, []string{userName}, nil, nil)
}

// CreateUser creates a new user with the roles carried in the document.
func (c *Client) CreateUser(ctx context.Context, user Entity) (Entity, error) {
	if err := requireFields(OpCreateUser, "user", user, "username", "password"); err != nil {
		return nil, err
	}
	return c.call(ctx, OpCreateUser, nil, nil, user)
}

// CreateFirstUser registers the very first user of a fresh Ops Manager
// installation through the unauthenticated endpoint. Ops Manager only.
func (c *Client) CreateFirstUser(ctx context.Context, user Entity) (Entity, error) {
	if err := requireFields(OpCreateFirstUser, "user", user, "username", "password"); err != nil {
		return nil, err
	}
	return c.call(ctx, OpCreateFirstUser, nil, nil, user)
}

// UpdateUser updates an existing user. The document must carry its id.
func (c *Client) UpdateUser(ctx context.Context, user Entity) (Entity, error) {
	if err := requireFields(OpUpdateUser, "user", user, "id"); err != nil {
		return nil, err
	}
	return c.call(ctx, OpUpdateUser, []string{user.ID()}, nil, user)
}

// GetUserWhitelist lists the whitelisted IP addresses of the user.
func (c *Client) GetUserWhitelist(ctx context.Context, userID string) (Entity, error) {
	return c.call(ctx, OpGetUserWhitelist, []string{userID}, nil, nil)
}
