package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Secrets holds credentials loaded from a separate YAML file: Slack API
// tokens keyed by workspace name (or a single legacy token) and the
// text-generation service credentials.
type Secrets struct {
	SlackTokens map[string]string `yaml:"slack_api_tokens"`
	SlackToken  string            `yaml:"slack_api_token"` // legacy single-workspace form
	OpenAIKey   string            `yaml:"openai_api_key"`
	OpenAIModel string            `yaml:"openai_model"`
}

// LoadSecrets reads the secrets YAML file with environment expansion.
func LoadSecrets(path string) (*Secrets, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read secrets file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var sec Secrets
	if err := yaml.Unmarshal([]byte(expanded), &sec); err != nil {
		return nil, fmt.Errorf("parse secrets: %w", err)
	}

	if sec.OpenAIKey == "" {
		return nil, fmt.Errorf("openai_api_key is required")
	}
	if sec.OpenAIModel == "" {
		return nil, fmt.Errorf("openai_model is required")
	}

	return &sec, nil
}

// TokenFor resolves the Slack token for a workspace. The named token map
// takes precedence; when it is empty the legacy single token is registered
// under the name "default", so only a workspace with that exact name
// picks it up. Returns false when no token matches.
func (s *Secrets) TokenFor(workspace string) (string, bool) {
	tokens := s.SlackTokens
	if len(tokens) == 0 && s.SlackToken != "" {
		tokens = map[string]string{"default": s.SlackToken}
	}
	token, ok := tokens[workspace]
	return token, ok && token != ""
}

// MaskValues returns all secret values for log masking.
func (s *Secrets) MaskValues() []string {
	vals := make([]string, 0, len(s.SlackTokens)+2)
	for _, t := range s.SlackTokens {
		vals = append(vals, t)
	}
	if s.SlackToken != "" {
		vals = append(vals, s.SlackToken)
	}
	if s.OpenAIKey != "" {
		vals = append(vals, s.OpenAIKey)
	}
	return vals
}
