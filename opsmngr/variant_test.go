package opsmngr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantString(t *testing.T) {
	assert.Equal(t, "Ops Manager", OpsManager.String())
	assert.Equal(t, "Cloud Manager", CloudManager.String())
	assert.Equal(t, "Ops Manager / Cloud Manager", anyVariant.String())
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"opsmanager", OpsManager, false},
		{"OpsManager", OpsManager, false},
		{"ops-manager", OpsManager, false},
		{"", OpsManager, false},
		{"cloudmanager", CloudManager, false},
		{"Cloud-Manager", CloudManager, false},
		{"atlas", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVariantSupports(t *testing.T) {
	assert.True(t, anyVariant.supports(OpsManager))
	assert.True(t, anyVariant.supports(CloudManager))
	assert.True(t, OpsManager.supports(OpsManager))
	assert.False(t, OpsManager.supports(CloudManager))
	assert.False(t, CloudManager.supports(OpsManager))
}
