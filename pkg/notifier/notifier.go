package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/slack-go/slack"

	"paperbot/pkg/domain"
)

//go:generate moq -out mocks/api.go -pkg mocks -skip-ensure -fmt goimports . API

// API is the subset of the Slack client used by the notifier.
type API interface {
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	DeleteMessageContext(ctx context.Context, channel, messageTimestamp string) (string, string, error)
}

// Service posts digests to Slack channels and prunes the bot's own aged
// messages. One Service per workspace, bound to that workspace's token.
type Service struct {
	api   API
	loc   *time.Location
	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a notifier service on top of a Slack API client.
func New(api API, loc *time.Location) *Service {
	return &Service{
		api:   api,
		loc:   loc,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Auth calls auth.test once to learn the bot's own identity.
func (s *Service) Auth(ctx context.Context) (domain.Identity, error) {
	resp, err := s.api.AuthTestContext(ctx)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("auth test: %w", err)
	}
	return domain.Identity{UserID: resp.UserID, BotID: resp.BotID}, nil
}
