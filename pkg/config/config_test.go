package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
days_back: 3
timezone: Asia/Tokyo
post_delay: 2s

llm:
  temperature: 0.5
  max_tokens: 800
  timeout: 10s

workspaces:
  - name: main
    journals:
      - name: Desalination
        rss_url: https://rss.sciencedirect.com/publication/science/00119164
        slack_channel_id: C0100000001
        abstract_tag: description
    arxiv:
      categories: [cs.AI, cs.LG]
      keywords: [carbon capture]
      slack_channel_id: C0100000002
      max_results: 50
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, 3, cfg.DaysBack)
		assert.Equal(t, 2*time.Second, cfg.PostDelay)
		assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.0001)
		assert.Equal(t, 800, cfg.LLM.MaxTokens)
		assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)

		require.Len(t, cfg.Workspaces, 1)
		ws := cfg.Workspaces[0]
		assert.Equal(t, "main", ws.Name)
		require.Len(t, ws.Journals, 1)
		assert.Equal(t, "description", ws.Journals[0].AbstractTag)
		require.NotNil(t, ws.Arxiv)
		assert.Equal(t, []string{"cs.AI", "cs.LG"}, ws.Arxiv.Categories)
		assert.Equal(t, 50, ws.Arxiv.MaxResults)

		assert.Equal(t, "Asia/Tokyo", cfg.Location().String())
	})

	t.Run("defaults", func(t *testing.T) {
		configContent := `
workspaces:
  - name: default
    journals:
      - rss_url: https://example.com/feed.xml
        slack_channel_id: C01
    arxiv:
      categories: [cs.AI]
      slack_channel_id: C02
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, 4, cfg.DaysBack)
		assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
		assert.Equal(t, 5*time.Second, cfg.PostDelay)
		assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.0001)
		assert.Equal(t, 500, cfg.LLM.MaxTokens)
		assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
		assert.Equal(t, "summary", cfg.Workspaces[0].Journals[0].AbstractTag)
		assert.Equal(t, 100, cfg.Workspaces[0].Arxiv.MaxResults)
	})

	t.Run("environment variable expansion", func(t *testing.T) {
		t.Setenv("TEST_CHANNEL_ID", "C0EXPANDED")
		configContent := `
workspaces:
  - name: default
    journals:
      - rss_url: https://example.com/feed.xml
        slack_channel_id: ${TEST_CHANNEL_ID}
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		assert.Equal(t, "C0EXPANDED", cfg.Workspaces[0].Journals[0].SlackChannelID)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("unknown timezone", func(t *testing.T) {
		configContent := `
timezone: Mars/Olympus_Mons
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load timezone")
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name:    "workspace without name",
			config:  "workspaces:\n  - journals: []\n",
			wantErr: "workspace name is required",
		},
		{
			name: "journal without rss_url",
			config: `
workspaces:
  - name: ws
    journals:
      - slack_channel_id: C01
`,
			wantErr: "rss_url is required",
		},
		{
			name: "journal without channel",
			config: `
workspaces:
  - name: ws
    journals:
      - rss_url: https://example.com/feed.xml
`,
			wantErr: "slack_channel_id is required",
		},
		{
			name: "bad abstract tag",
			config: `
workspaces:
  - name: ws
    journals:
      - rss_url: https://example.com/feed.xml
        slack_channel_id: C01
        abstract_tag: body
`,
			wantErr: `unknown abstract_tag "body"`,
		},
		{
			name: "arxiv without categories",
			config: `
workspaces:
  - name: ws
    arxiv:
      slack_channel_id: C01
`,
			wantErr: "arxiv categories are required",
		},
		{
			name: "arxiv without channel",
			config: `
workspaces:
  - name: ws
    arxiv:
      categories: [cs.AI]
`,
			wantErr: "arxiv slack_channel_id is required",
		},
		{
			name: "arxiv max_results over the API cap",
			config: `
workspaces:
  - name: ws
    arxiv:
      categories: [cs.AI]
      slack_channel_id: C01
      max_results: 500
`,
			wantErr: "max_results must be between 1 and 100",
		},
		{
			name:    "negative days_back",
			config:  "days_back: -1\n",
			wantErr: "days_back must be non-negative",
		},
		{
			name:    "temperature out of range",
			config:  "llm:\n  temperature: 3.5\n",
			wantErr: "temperature must be between 0 and 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.config))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Location(t *testing.T) {
	// zero-value config falls back to UTC
	cfg := &Config{}
	assert.Equal(t, time.UTC, cfg.Location())
}
