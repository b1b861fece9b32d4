package opsmngr

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	variant    Variant
	timeout    time.Duration
	httpClient http.Client
	userAgent  string
	transport  Transport
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		variant:   OpsManager,
		timeout:   30 * time.Second,
		userAgent: "pingme/" + Version,
	}
}

// Version is the library version reported in the User-Agent header.
var Version = "dev"

// WithVariant selects which API variant the client targets. Endpoints not
// exposed by the variant fail with UnsupportedOperationError before any
// request is made. The default is OpsManager.
func WithVariant(v Variant) Option {
	return func(o *clientOptions) {
		o.variant = v
	}
}

// WithTimeout sets the HTTP client timeout for a single request.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient supplies the underlying HTTP client. Its transport is
// wrapped with the digest authentication handler.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = *client
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithTransport replaces the whole transport, bypassing HTTP entirely.
// Intended for tests that need to observe or fake API traffic.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}
