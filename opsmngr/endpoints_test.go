package opsmngr

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointCatalog(t *testing.T) {
	validMethods := map[string]bool{
		http.MethodGet:    true,
		http.MethodPost:   true,
		http.MethodPatch:  true,
		http.MethodPut:    true,
		http.MethodDelete: true,
	}

	require.NotEmpty(t, endpoints)

	for op, ep := range endpoints {
		t.Run(string(op), func(t *testing.T) {
			assert.True(t, validMethods[ep.method], "unexpected HTTP method %q", ep.method)
			assert.NotEmpty(t, ep.path)
			assert.False(t, strings.HasPrefix(ep.path, "/"), "paths are relative to the API base")
			assert.NotZero(t, ep.variants, "every endpoint must support at least one variant")

			placeholders := strings.Count(ep.path, "%s")
			assert.Equal(t, placeholders, len(ep.params),
				"placeholder count must match the declared parameters")

			for _, p := range ep.params {
				assert.NotEmpty(t, p)
			}
		})
	}
}

func TestEndpointVariantPartition(t *testing.T) {
	opsManagerOnly := []Op{
		OpGetMaintenanceWindows,
		OpGetMaintenanceWindow,
		OpCreateMaintenanceWindow,
		OpUpdateMaintenanceWindow,
		OpDeleteMaintenanceWindow,
		OpGetCheckpoints,
		OpGetCheckpoint,
		OpCreateFirstUser,
	}

	restricted := make(map[Op]bool, len(opsManagerOnly))
	for _, op := range opsManagerOnly {
		restricted[op] = true
		ep, ok := endpoints[op]
		require.True(t, ok, "missing descriptor for %s", op)
		assert.Equal(t, OpsManager, ep.variants, "%s must be Ops Manager only", op)
	}

	for op, ep := range endpoints {
		if restricted[op] {
			continue
		}
		assert.Equal(t, anyVariant, ep.variants, "%s must be supported by both variants", op)
	}
}
