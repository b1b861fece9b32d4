package opsmngr

import (
	"context"
	"strings"
)

// GetHosts lists the hosts monitored in the group.
func (c *Client) GetHosts(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetHosts, []string{groupID}, nil, nil)
}

// GetHost fetches a host by its ID.
func (c *Client) GetHost(ctx context.Context, groupID, hostID string) (Entity, error) {
	return c.call(ctx, OpGetHost, []string{groupID, hostID}, nil, nil)
}

// GetHostByName fetches a host by its hostname:port combination.
func (c *Client) GetHostByName(ctx context.Context, groupID, hostName string) (Entity, error) {
	if hostName != "" && !strings.Contains(hostName, ":") {
		return nil, &InvalidParameterError{Op: OpGetHostByName, Params: []string{"hostName"}}
	}
	return c.call(ctx, OpGetHostByName, []string{groupID, hostName}, nil, nil)
}

// CreateHost starts monitoring a new host in the group. The document needs
// at least hostname and port; hosts using MONGODB-CR additionally need
// username and password.
func (c *Client) CreateHost(ctx context.Context, groupID string, host Entity) (Entity, error) {
	if err := validateHostDocument(OpCreateHost, host); err != nil {
		return nil, err
	}
	return c.call(ctx, OpCreateHost, []string{groupID}, nil, host)
}

// UpdateHost updates the monitoring configuration of an existing host. The
// document must carry the host's id.
func (c *Client) UpdateHost(ctx context.Context, groupID string, host Entity) (Entity, error) {
	if err := validateHostDocument(OpUpdateHost, host); err != nil {
		return nil, err
	}
	if host.ID() == "" {
		return nil, &InvalidParameterError{Op: OpUpdateHost, Params: []string{"host.id"}}
	}
	return c.call(ctx, OpUpdateHost, []string{groupID, host.ID()}, nil, host)
}

// DeleteHost stops monitoring the host and removes it from the group.
func (c *Client) DeleteHost(ctx context.Context, groupID, hostID string) (Entity, error) {
	return c.call(ctx, OpDeleteHost, []string{groupID, hostID}, nil, nil)
}

// GetLastPing returns the ping document for the last ping received from
// the host's monitoring agent.
func (c *Client) GetLastPing(ctx context.Context, groupID, hostID string) (Entity, error) {
	return c.call(ctx, OpGetLastPing, []string{groupID, hostID}, nil, nil)
}

// validateHostDocument checks the invariants the hosts endpoint enforces
// on create and update payloads.
func validateHostDocument(op Op, host Entity) error {
	if err := requireFields(op, "host", host, "hostname", "port"); err != nil {
		return err
	}
	if host.Str("authMechanismName") == "MONGODB_CR" {
		return requireFields(op, "host", host, "username", "password")
	}
	return nil
}
