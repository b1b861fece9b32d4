package opsmngr

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Client talks to the MMS Public API of one Ops Manager or Cloud Manager
// deployment. It is immutable after construction and safe for concurrent
// use; every call authenticates independently.
type Client struct {
	host      string
	username  string
	variant   Variant
	transport Transport
	logger    zerolog.Logger
}

// NewClient creates a client for the deployment at host. The username and
// API key are the credentials of an API user; host is the base URL of the
// installation, e.g. https://cloud.mongodb.com for Cloud Manager.
func NewClient(host, username, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("%w: host URL is required", ErrInvalidConfig)
	}
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidConfig)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	client := &Client{
		host:     strings.TrimRight(host, "/"),
		username: username,
		variant:  options.variant,
		logger:   logger,
	}

	if options.transport != nil {
		client.transport = options.transport
		return client, nil
	}

	base := options.httpClient
	base.Timeout = options.timeout

	transport, err := newHTTPTransport(client.host, username, apiKey, &base, options.userAgent, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	client.transport = transport

	return client, nil
}

// Host returns the base URL the client was constructed with.
func (c *Client) Host() string {
	return c.host
}

// Username returns the API user the client authenticates as.
func (c *Client) Username() string {
	return c.username
}

// Variant returns the API variant the client was constructed for.
func (c *Client) Variant() Variant {
	return c.variant
}

// Ping verifies connectivity and credentials by listing the groups visible
// to the API user.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.call(ctx, OpGetGroups, nil, nil, nil)
	return err
}

// call is the single dispatch routine behind every endpoint method. It
// resolves the operation against the catalog, gates it on the client's
// variant, validates the path parameters, interpolates the path and hands
// the request to the transport. Validation failures never reach the
// network.
func (c *Client) call(ctx context.Context, op Op, args []string, query url.Values, body any) (Entity, error) {
	ep, ok := endpoints[op]
	if !ok {
		return nil, fmt.Errorf("opsmngr: unknown operation %q", op)
	}

	if !ep.variants.supports(c.variant) {
		return nil, &UnsupportedOperationError{Op: op, Variant: c.variant}
	}

	var missing []string
	for i, name := range ep.params {
		if i >= len(args) || strings.TrimSpace(args[i]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &InvalidParameterError{Op: op, Params: missing}
	}

	path := ep.path
	if len(args) > 0 {
		vals := make([]any, len(args))
		for i, a := range args {
			vals[i] = a
		}
		path = fmt.Sprintf(ep.path, vals...)
	}

	return c.transport.Do(ctx, &Request{
		Op:     op,
		Method: ep.method,
		Path:   path,
		Query:  query,
		Body:   body,
	})
}

// requireFields validates that a request document carries the fields the
// endpoint demands, mirroring the server-side contract so bad payloads
// fail before any I/O.
func requireFields(op Op, name string, doc Entity, fields ...string) error {
	if len(doc) == 0 {
		return &InvalidParameterError{Op: op, Params: []string{name}}
	}

	var missing []string
	for _, f := range fields {
		if _, ok := doc[f]; !ok {
			missing = append(missing, name+"."+f)
		}
	}
	if len(missing) > 0 {
		return &InvalidParameterError{Op: op, Params: missing}
	}
	return nil
}
