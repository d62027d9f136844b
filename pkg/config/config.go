package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration: the scan window, pacing,
// timezone used for all date comparisons, and the per-workspace sources.
type Config struct {
	DaysBack  int           `yaml:"days_back" json:"days_back" jsonschema:"default=4,minimum=0,description=How many days back the target publication date is"`
	Timezone  string        `yaml:"timezone" json:"timezone" jsonschema:"default=Asia/Tokyo,description=Fixed timezone for all date comparisons"`
	PostDelay time.Duration `yaml:"post_delay" json:"post_delay" jsonschema:"default=5s,description=Pacing delay after each posted item"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=Text-generation service configuration"`

	Workspaces []Workspace `yaml:"workspaces" json:"workspaces" jsonschema:"description=Slack workspaces to process"`

	loc *time.Location
}

// LLMConfig holds settings for the summarization service. The API key and
// model come from the secrets file and are filled in by the caller.
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (empty for api.openai.com)"`
	APIKey      string        `yaml:"-" json:"-"`
	Model       string        `yaml:"-" json:"-"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// Workspace describes one Slack workspace with its publication sources.
type Workspace struct {
	Name     string    `yaml:"name" json:"name" jsonschema:"required,description=Workspace name, used to resolve the API token"`
	Journals []Journal `yaml:"journals" json:"journals" jsonschema:"description=Journal RSS feeds"`
	Arxiv    *Arxiv    `yaml:"arxiv" json:"arxiv,omitempty" jsonschema:"description=arXiv search source"`
}

// Journal describes a single journal RSS feed and where its digests go.
type Journal struct {
	Name           string `yaml:"name" json:"name" jsonschema:"description=Journal name, for logs only"`
	RSSURL         string `yaml:"rss_url" json:"rss_url" jsonschema:"required,description=Feed URL"`
	SlackChannelID string `yaml:"slack_channel_id" json:"slack_channel_id" jsonschema:"required,description=Channel for digests"`
	AbstractTag    string `yaml:"abstract_tag" json:"abstract_tag" jsonschema:"default=summary,enum=summary,enum=description,enum=content,description=Which feed field carries the abstract"`
}

// Arxiv describes the arXiv metadata search source.
type Arxiv struct {
	Categories     []string `yaml:"categories" json:"categories" jsonschema:"required,description=arXiv categories, OR-joined into the search query"`
	Keywords       []string `yaml:"keywords" json:"keywords" jsonschema:"description=Case-insensitive abstract keywords, empty means no filtering"`
	SlackChannelID string   `yaml:"slack_channel_id" json:"slack_channel_id" jsonschema:"required,description=Channel for digests"`
	MaxResults     int      `yaml:"max_results" json:"max_results" jsonschema:"default=100,maximum=100,description=Search result cap"`
}

// Load reads configuration from a YAML file, expands environment variables,
// applies defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults
	if cfg.DaysBack == 0 {
		cfg.DaysBack = 4
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Tokyo"
	}
	if cfg.PostDelay == 0 {
		cfg.PostDelay = 5 * time.Second
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
	for i := range cfg.Workspaces {
		for j := range cfg.Workspaces[i].Journals {
			if cfg.Workspaces[i].Journals[j].AbstractTag == "" {
				cfg.Workspaces[i].Journals[j].AbstractTag = "summary"
			}
		}
		if cfg.Workspaces[i].Arxiv != nil && cfg.Workspaces[i].Arxiv.MaxResults == 0 {
			cfg.Workspaces[i].Arxiv.MaxResults = 100
		}
	}

	// resolve the fixed timezone once, all date comparisons use it
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	cfg.loc = loc

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Location returns the fixed timezone resolved at load time.
func (c *Config) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.DaysBack < 0 {
		return fmt.Errorf("days_back must be non-negative")
	}
	if cfg.PostDelay < 0 {
		return fmt.Errorf("post_delay must be non-negative")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	for _, ws := range cfg.Workspaces {
		if ws.Name == "" {
			return fmt.Errorf("workspace name is required")
		}
		for _, j := range ws.Journals {
			if j.RSSURL == "" {
				return fmt.Errorf("workspace %s: journal rss_url is required", ws.Name)
			}
			if j.SlackChannelID == "" {
				return fmt.Errorf("workspace %s: journal slack_channel_id is required", ws.Name)
			}
			switch j.AbstractTag {
			case "summary", "description", "content":
			default:
				return fmt.Errorf("workspace %s: unknown abstract_tag %q", ws.Name, j.AbstractTag)
			}
		}
		if ws.Arxiv != nil {
			if len(ws.Arxiv.Categories) == 0 {
				return fmt.Errorf("workspace %s: arxiv categories are required", ws.Name)
			}
			if ws.Arxiv.SlackChannelID == "" {
				return fmt.Errorf("workspace %s: arxiv slack_channel_id is required", ws.Name)
			}
			if ws.Arxiv.MaxResults < 1 || ws.Arxiv.MaxResults > 100 {
				return fmt.Errorf("workspace %s: arxiv max_results must be between 1 and 100", ws.Name)
			}
		}
	}

	return nil
}
