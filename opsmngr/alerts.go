package opsmngr

import (
	"context"
	"net/url"
	"time"
)

// Alert status values accepted by GetAlerts.
const (
	AlertStatusOpen     = "OPEN"
	AlertStatusClosed   = "CLOSED"
	AlertStatusTracking = "TRACKING"
)

// GetAlerts lists the alerts of the group. Pass an empty status to list
// alerts regardless of status.
func (c *Client) GetAlerts(ctx context.Context, groupID, status string) (Entity, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {status}}
	}
	return c.call(ctx, OpGetAlerts, []string{groupID}, query, nil)
}

// GetAlert fetches a single alert.
func (c *Client) GetAlert(ctx context.Context, groupID, alertID string) (Entity, error) {
	return c.call(ctx, OpGetAlert, []string{groupID, alertID}, nil, nil)
}

// AcknowledgeAlert silences the alert until the given time. Passing a past
// time un-acknowledges it.
func (c *Client) AcknowledgeAlert(ctx context.Context, groupID, alertID string, until time.Time) (Entity, error) {
	if until.IsZero() {
		return nil, &InvalidParameterError{Op: OpAcknowledgeAlert, Params: []string{"until"}}
	}
	body := Entity{"acknowledgedUntil": until.UTC().Format(time.RFC3339)}
	return c.call(ctx, OpAcknowledgeAlert, []string{groupID, alertID}, nil, body)
}

// GetAlertConfigs lists the alert configurations of the group.
func (c *Client) GetAlertConfigs(ctx context.Context, groupID string) (Entity, error) {
	return c.call(ctx, OpGetAlertConfigs, []string{groupID}, nil, nil)
}

// GetAlertConfigsByAlert returns the configurations that triggered the
// alert.
func (c *Client) GetAlertConfigsByAlert(ctx context.Context, groupID, alertID string) (Entity, error) {
	return c.call(ctx, OpGetAlertConfigsByAlert, []string{groupID, alertID}, nil, nil)
}

// GetOpenAlertsByConfig lists the open alerts triggered by an alert
// configuration.
func (c *Client) GetOpenAlertsByConfig(ctx context.Context, groupID, alertConfigID string) (Entity, error) {
	return c.call(ctx, OpGetOpenAlertsByConfig, []string{groupID, alertConfigID}, nil, nil)
}

// CreateAlertConfig creates an alert configuration in the group.
func (c *Client) CreateAlertConfig(ctx context.Context, groupID string, config Entity) (Entity, error) {
	if err := requireFields(OpCreateAlertConfig, "config", config, "eventTypeName"); err != nil {
		return nil, err
	}
	return c.call(ctx, OpCreateAlertConfig, []string{groupID}, nil, config)
}

// UpdateAlertConfig replaces the fields of an existing alert
// configuration. The document must carry its id.
func (c *Client) UpdateAlertConfig(ctx context.Context, groupID string, config Entity) (Entity, error) {
	if err := requireFields(OpUpdateAlertConfig, "config", config, "id"); err != nil {
		return nil, err
	}
	return c.call(ctx, OpUpdateAlertConfig, []string{groupID, config.ID()}, nil, config)
}

// SetAlertConfigEnabled enables or disables an alert configuration without
// touching its other fields.
func (c *Client) SetAlertConfigEnabled(ctx context.Context, groupID, alertConfigID string, enabled bool) (Entity, error) {
	return c.call(ctx, OpSetAlertConfigEnabled, []string{groupID, alertConfigID}, nil, Entity{"enabled": enabled})
}

// DeleteAlertConfig removes an alert configuration from the group.
func (c *Client) DeleteAlertConfig(ctx context.Context, groupID, alertConfigID string) (Entity, error) {
	return c.call(ctx, OpDeleteAlertConfig, []string{groupID, alertConfigID}, nil, nil)
}
