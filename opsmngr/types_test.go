package opsmngr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityAccessors(t *testing.T) {
	page := Entity{
		"totalCount": float64(2),
		"results": []any{
			map[string]any{"id": "1", "name": "g1"},
			map[string]any{"id": "2", "name": "g2"},
			"not an object",
		},
	}

	results := page.Results()
	assert.Len(t, results, 2, "non-object entries are skipped")
	assert.Equal(t, "1", results[0].ID())
	assert.Equal(t, "g2", results[1].Str("name"))
	assert.Equal(t, 2, page.TotalCount())
}

func TestEntityAccessorsOnMissingFields(t *testing.T) {
	e := Entity{"port": float64(27017)}

	assert.Empty(t, e.ID())
	assert.Empty(t, e.Str("name"))
	assert.Empty(t, e.Str("port"), "non-string fields read as empty strings")
	assert.Nil(t, e.Results())
	assert.Zero(t, e.TotalCount())
}
