package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				DaysBack: 4,
				Timezone: "Asia/Tokyo",
				Workspaces: []Workspace{
					{Name: "default", Journals: []Journal{{RSSURL: "https://example.com/feed.xml", SlackChannelID: "C01", AbstractTag: "summary"}}},
				},
			},
			wantErr: false,
		},
		{
			name:    "missing timezone",
			config:  &Config{DaysBack: 4},
			wantErr: true,
		},
		{
			name: "negative days_back",
			config: &Config{
				DaysBack: -2,
				Timezone: "Asia/Tokyo",
			},
			wantErr: true,
		},
		{
			name: "workspace without name",
			config: &Config{
				DaysBack:   4,
				Timezone:   "Asia/Tokyo",
				Workspaces: []Workspace{{}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAgainstEmbeddedSchema(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Contains(t, parsed, "$defs")
}

func TestEmbeddedSchemaIsValidJSON(t *testing.T) {
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &schema))
	assert.Contains(t, schema, "$defs")
}
