package notifier

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"paperbot/pkg/domain"
)

// Post sends the digest as two independent messages: title+link first,
// then summary+abstract. There is no atomicity between the two, a failure
// in between leaves a half-posted item.
func (s *Service) Post(ctx context.Context, channel string, d domain.Digest) error {
	_, _, err := s.api.PostMessageContext(ctx, channel,
		slack.MsgOptionAttachments(slack.Attachment{Title: d.Title, Text: d.Link}))
	if err != nil {
		return fmt.Errorf("post title message: %w", err)
	}

	_, _, err = s.api.PostMessageContext(ctx, channel,
		slack.MsgOptionAttachments(slack.Attachment{Title: d.Summary, Text: d.Abstract}))
	if err != nil {
		return fmt.Errorf("post summary message: %w", err)
	}

	return nil
}
