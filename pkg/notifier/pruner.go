package notifier

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/slack-go/slack"

	"paperbot/pkg/domain"
)

const (
	historyPageSize = 200

	// retention window: the bot's own unpinned messages aged
	// [retentionNewest, retentionOldest) become eligible for deletion
	retentionOldest = 140 * 24 * time.Hour
	retentionNewest = 120 * 24 * time.Hour
)

// Prune scans the channel's message history end to end via cursor
// pagination and deletes the bot's own unpinned messages whose age falls
// inside the retention window. Per-message delete failures never abort the
// scan; only a history fetch failure does.
func (s *Service) Prune(ctx context.Context, channel string, id domain.Identity) error {
	now := s.now().In(s.loc)
	windowStart := float64(now.Add(-retentionOldest).Unix())
	windowEnd := float64(now.Add(-retentionNewest).Unix())

	deleted, scanned := 0, 0
	cursor := ""
	for {
		resp, err := s.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
			ChannelID: channel,
			Cursor:    cursor,
			Oldest:    "0",
			Limit:     historyPageSize,
		})
		if err != nil {
			return fmt.Errorf("fetch history for %s: %w", channel, err)
		}

		for i := range resp.Messages {
			scanned++
			msg := &resp.Messages[i]
			if !eligible(msg, id, windowStart, windowEnd) {
				continue
			}
			if s.deleteWithRetry(ctx, channel, msg.Timestamp) {
				deleted++
			}
		}

		cursor = resp.ResponseMetaData.NextCursor
		if cursor == "" {
			break
		}
	}

	lgr.Printf("[INFO] pruned %d of %d scanned messages in %s", deleted, scanned, channel)
	return nil
}

// eligible reports whether a message is the bot's own, unpinned and inside
// the [start, end) deletion window. Pin and author status come fresh from
// the page read, other actors may change them between pages.
func eligible(msg *slack.Message, id domain.Identity, start, end float64) bool {
	ts, err := strconv.ParseFloat(msg.Timestamp, 64)
	if err != nil {
		return false
	}
	own := (id.UserID != "" && msg.User == id.UserID) || (id.BotID != "" && msg.BotID == id.BotID)
	return own && ts >= start && ts < end && len(msg.PinnedTo) == 0
}

// deleteWithRetry deletes one message, retrying without bound on rate
// limiting and giving up on any other error. Reports whether the message
// was deleted.
func (s *Service) deleteWithRetry(ctx context.Context, channel, ts string) bool {
	for {
		_, _, err := s.api.DeleteMessageContext(ctx, channel, ts)
		if err == nil {
			return true
		}

		var rateErr *slack.RateLimitedError
		if errors.As(err, &rateErr) {
			wait := rateErr.RetryAfter
			if wait <= 0 {
				wait = time.Second
			}
			lgr.Printf("[WARN] rate limited deleting %s in %s, waiting %v", ts, channel, wait+time.Second)
			s.sleep(wait + time.Second)
			continue
		}

		if strings.Contains(err.Error(), "cant_delete_message") {
			lgr.Printf("[INFO] skip message %s in %s: not deletable", ts, channel)
			return false
		}

		lgr.Printf("[WARN] delete %s in %s failed: %v", ts, channel, err)
		return false
	}
}
