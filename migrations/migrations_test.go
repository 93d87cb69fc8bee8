package migrations

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElasticsearchMapping(t *testing.T) {
	var mapping struct {
		Mappings struct {
			Properties map[string]struct {
				Type string `json:"type"`
			} `json:"properties"`
		} `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal([]byte(ElasticsearchMapping), &mapping))

	props := mapping.Mappings.Properties
	assert.Equal(t, "geo_point", props["coordinates"].Type)
	assert.Equal(t, "keyword", props["country"].Type)
	assert.Equal(t, "integer", props["restaurant_id"].Type)
}
