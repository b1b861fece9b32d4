package opsmngr

import (
	"context"
	"net/url"
)

// Default sampling arguments for the metrics endpoints.
const (
	DefaultGranularity = "1M"
	DefaultPeriod      = "P2D"
)

// metricsQuery builds the granularity/period query shared by the metric
// endpoints, falling back to the documented defaults.
func metricsQuery(granularity, period string) url.Values {
	if granularity == "" {
		granularity = DefaultGranularity
	}
	if period == "" {
		period = DefaultPeriod
	}
	return url.Values{"granularity": {granularity}, "period": {period}}
}

// GetHostMetrics lists the metrics available for a host.
//
// Deprecated: the Monitoring API superseded per-host metrics with the
// measurements endpoints; this is kept for older Ops Manager releases.
func (c *Client) GetHostMetrics(ctx context.Context, groupID, hostID string) (Entity, error) {
	return c.call(ctx, OpGetHostMetrics, []string{groupID, hostID}, nil, nil)
}

// GetHostMetric fetches the data points of a host metric.
//
// Deprecated: the Monitoring API superseded per-host metrics with the
// measurements endpoints; this is kept for older Ops Manager releases.
func (c *Client) GetHostMetric(ctx context.Context, groupID, hostID, metricID, granularity, period string) (Entity, error) {
	return c.call(ctx, OpGetHostMetric, []string{groupID, hostID, metricID}, metricsQuery(granularity, period), nil)
}

// GetDeviceMetric fetches the data points of a hardware metric for one
// device.
//
// Deprecated: the Monitoring API superseded per-host metrics with the
// measurements endpoints; this is kept for older Ops Manager releases.
func (c *Client) GetDeviceMetric(ctx context.Context, groupID, hostID, metricID, deviceName, granularity, period string) (Entity, error) {
	return c.call(ctx, OpGetDeviceMetric, []string{groupID, hostID, metricID, deviceName}, metricsQuery(granularity, period), nil)
}

// GetDatabaseMetric fetches the data points of a database metric for one
// database.
//
// Deprecated: the Monitoring API superseded per-host metrics with the
// measurements endpoints; this is kept for older Ops Manager releases.
func (c *Client) GetDatabaseMetric(ctx context.Context, groupID, hostID, metricID, databaseName, granularity, period string) (Entity, error) {
	return c.call(ctx, OpGetDatabaseMetric, []string{groupID, hostID, metricID, databaseName}, metricsQuery(granularity, period), nil)
}
