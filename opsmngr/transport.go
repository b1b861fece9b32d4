package opsmngr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mongodb-forks/digest"
	"github.com/rs/zerolog"
)

// apiBasePath is the prefix of every Public API v1.0 endpoint.
const apiBasePath = "api/public/v1.0/"

// Request is one fully resolved API call: path parameters are already
// interpolated, the body is ready to be serialized as JSON.
type Request struct {
	Op     Op
	Method string
	Path   string // relative to the API base, e.g. "groups/abc/hosts"
	Query  url.Values
	Body   any
}

// Transport executes a single request against the API and returns the
// decoded response document. Implementations must not retry.
type Transport interface {
	Do(ctx context.Context, req *Request) (Entity, error)
}

// httpTransport is the production Transport. It authenticates every call
// with the API's digest scheme and keeps no state between calls.
type httpTransport struct {
	baseURL   *url.URL
	client    *http.Client
	userAgent string
	logger    zerolog.Logger
}

// newHTTPTransport builds the digest-authenticated transport. The supplied
// http.Client is copied so the caller's client is never mutated; its
// RoundTripper is wrapped with the digest challenge handler.
func newHTTPTransport(host, username, apiKey string, base *http.Client, userAgent string, logger zerolog.Logger) (*httpTransport, error) {
	u, err := url.Parse(strings.TrimRight(host, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid host URL %q: %w", host, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid host URL %q: scheme must be http or https", host)
	}

	dt := digest.NewTransport(username, apiKey)
	if base.Transport != nil {
		dt.Transport = base.Transport
	}

	client := *base
	client.Transport = dt

	return &httpTransport{
		baseURL:   u.JoinPath(apiBasePath),
		client:    &client,
		userAgent: userAgent,
		logger:    logger,
	}, nil
}

// Do implements Transport.
func (t *httpTransport) Do(ctx context.Context, req *Request) (Entity, error) {
	u := t.baseURL.JoinPath(req.Path)
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body for %s: %w", req.Op, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", req.Op, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if t.userAgent != "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}

	t.logger.Debug().
		Str("op", string(req.Op)).
		Str("method", req.Method).
		Str("url", u.String()).
		Msg("Making API request")

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	t.logger.Debug().
		Str("op", string(req.Op)).
		Int("status", resp.StatusCode).
		Msg("API response")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return decodeBody(raw)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, newClientRequestError(resp.StatusCode, raw)
	default:
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Body:       string(raw),
			Err:        fmt.Errorf("server returned status %d", resp.StatusCode),
		}
	}
}

// decodeBody parses a success response. Delete operations return an empty
// body, which decodes to an empty entity.
func decodeBody(raw []byte) (Entity, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Entity{}, nil
	}

	var out Entity
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &MalformedResponseError{Body: string(raw), Err: err}
	}
	return out, nil
}
