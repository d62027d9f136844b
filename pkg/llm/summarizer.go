package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"paperbot/pkg/config"
)

// Summarizer produces a Japanese digest of a paper via an OpenAI-compatible
// chat completion endpoint: a title translation followed by three bullet
// key points. One blocking request per item, no retry of its own.
type Summarizer struct {
	client *openai.Client
	config config.LLMConfig
}

// NewSummarizer creates a summarizer from the LLM configuration.
func NewSummarizer(cfg config.LLMConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// instruction appended to the abstract; asks for a Japanese title
// translation plus exactly three Japanese bullet points
const promptTemplate = "%s\n\nこれは “%s” というタイトルの論文のAbstractです。" +
	"要点を 3 点、日本語箇条書きで示し、冒頭にタイトルの和訳を付けてください。"

// Summarize requests a digest for one paper. Failures propagate to the
// caller, which decides whether to skip the item or abort.
func (s *Summarizer) Summarize(ctx context.Context, title, abstract string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(promptTemplate, abstract, title),
			},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
