package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thegreatco/pingme/opsmngr"
)

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{"empty expression", ""},
		{"whitespace only", "   "},
		{"syntax error", "hostname =="},
		{"non-boolean result", `"just a string"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			require.Error(t, err)

			var compErr *CompilationError
			assert.ErrorAs(t, err, &compErr)
		})
	}
}

func TestFilterMatch(t *testing.T) {
	host := opsmngr.Entity{
		"hostname":    "shard-00.example.com",
		"port":        27017,
		"typeName":    "REPLICA_PRIMARY",
		"lastPing":    time.Now().Add(-48 * time.Hour).Format(time.RFC3339),
		"deactivated": false,
	}

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{"field equality", `typeName == "REPLICA_PRIMARY"`, true},
		{"field inequality", `typeName == "STANDALONE"`, false},
		{"numeric comparison", `port == 27017`, true},
		{"string helper", `contains(hostname, "SHARD")`, true},
		{"prefix helper", `startsWith(hostname, "shard-00")`, true},
		{"date helper", `daysSince(parseDate(Str(lastPing))) >= 2`, true},
		{"boolean field", `!deactivated`, true},
		{"missing field compares as nil", `clusterId == nil`, true},
		{"doc access", `Doc.hostname == hostname`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Match(host))
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestFilterApply(t *testing.T) {
	docs := []opsmngr.Entity{
		{"hostname": "shard-00.example.com", "typeName": "REPLICA_PRIMARY"},
		{"hostname": "shard-01.example.com", "typeName": "REPLICA_SECONDARY"},
		{"hostname": "config-00.example.com", "typeName": "SHARD_CONFIG"},
	}

	f, err := Compile(`startsWith(hostname, "shard")`)
	require.NoError(t, err)

	matched := f.Apply(docs)
	require.Len(t, matched, 2)
	assert.Equal(t, "shard-00.example.com", matched[0].Str("hostname"))
	assert.Equal(t, "shard-01.example.com", matched[1].Str("hostname"))

	none, err := Compile(`typeName == "STANDALONE"`)
	require.NoError(t, err)
	assert.Empty(t, none.Apply(docs))
}
