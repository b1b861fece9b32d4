package opsmngr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestHandshake(t *testing.T) {
	var requests atomic.Int32
	var authorized []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		auth := r.Header.Get("Authorization")
		if auth == "" {
			w.Header().Set("WWW-Authenticate",
				`Digest realm="MMS Public API", domain="", nonce="abc123", algorithm=MD5, qop="auth", stale=false`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		authorized = append(authorized, auth)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[],"totalCount":0}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "joe@example.com", "key", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.GetGroups(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), requests.Load(), "expected challenge followed by authenticated retry")
	require.Len(t, authorized, 1)
	assert.True(t, strings.HasPrefix(authorized[0], "Digest "))
	assert.Contains(t, authorized[0], `username="joe@example.com"`)
	assert.Contains(t, authorized[0], `nonce="abc123"`)
}

func TestTransportRequestBody(t *testing.T) {
	var received map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !challengeDigest(w, r) {
			return
		}
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"g-new","name":"App Servers"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "joe@example.com", "key", zerolog.Nop())
	require.NoError(t, err)

	group, err := client.CreateGroup(context.Background(), "App Servers")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "App Servers"}, received)
	assert.Equal(t, "g-new", group.ID())
}

func TestTransportContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "joe@example.com", "key", zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.GetGroups(ctx)
	require.Error(t, err)

	var transErr *TransportError
	require.ErrorAs(t, err, &transErr)
	assert.ErrorIs(t, transErr.Err, context.Canceled)
}

func TestNewHTTPTransportBaseURL(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"plain host", "https://opsmanager.example.com", "https://opsmanager.example.com/api/public/v1.0/"},
		{"trailing slash", "https://opsmanager.example.com/", "https://opsmanager.example.com/api/public/v1.0/"},
		{"host with port", "http://opsmanager.example.com:8080", "http://opsmanager.example.com:8080/api/public/v1.0/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := newHTTPTransport(tt.host, "joe@example.com", "key", &http.Client{}, "", zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.baseURL.String())
		})
	}
}
