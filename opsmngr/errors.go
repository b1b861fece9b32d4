package opsmngr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid opsmngr configuration")
	// ErrUnauthorized indicates authentication failure
	ErrUnauthorized = errors.New("unauthorized: invalid username or API key")
)

// UnsupportedOperationError is returned when an operation is invoked on a
// client whose variant does not expose the endpoint. No request is sent.
type UnsupportedOperationError struct {
	Op      Op
	Variant Variant
}

// Error implements the error interface
func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("opsmngr: %s is not supported by %s", e.Op, e.Variant)
}

// InvalidParameterError is returned when a required parameter is missing or
// malformed. No request is sent.
type InvalidParameterError struct {
	Op     Op
	Params []string
}

// Error implements the error interface
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("opsmngr: %s: missing or invalid parameters: %s",
		e.Op, strings.Join(e.Params, ", "))
}

// ClientRequestError represents a 4xx response from the API. The message is
// taken from the documented error payload so callers can act on it without
// re-querying the server.
type ClientRequestError struct {
	StatusCode int
	ErrorCode  int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *ClientRequestError) Error() string {
	return fmt.Sprintf("opsmngr: API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *ClientRequestError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *ClientRequestError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// apiErrorPayload mirrors the error document returned by the API:
// {"error": 401, "reason": "Unauthorized", "detail": "..."}.
type apiErrorPayload struct {
	Error  int    `json:"error"`
	Reason string `json:"reason"`
	Detail string `json:"detail"`
}

// newClientRequestError builds a ClientRequestError from a 4xx response body.
func newClientRequestError(status int, body []byte) *ClientRequestError {
	e := &ClientRequestError{
		StatusCode: status,
		Body:       string(body),
	}

	var payload apiErrorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		e.ErrorCode = payload.Error
		switch {
		case payload.Detail != "":
			e.Message = payload.Detail
		case payload.Reason != "":
			e.Message = payload.Reason
		}
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}

	return e
}

// MalformedResponseError is returned when a success response cannot be
// decoded as JSON. It captures the raw body for diagnosis; this usually
// means the server and the client disagree about the API contract.
type MalformedResponseError struct {
	Body string
	Err  error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("opsmngr: malformed response body: %v", e.Err)
}

// Unwrap returns the underlying decode error
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// TransportError represents a network-level failure or a 5xx response.
// These are transient or server-side conditions; the request may succeed
// if repeated later.
type TransportError struct {
	StatusCode int // zero when the request never completed
	Body       string
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("opsmngr: server error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("opsmngr: request failed: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}
