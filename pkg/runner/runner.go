package runner

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"paperbot/pkg/config"
	"paperbot/pkg/domain"
)

//go:generate moq -out mocks/journal_source.go -pkg mocks -skip-ensure -fmt goimports . JournalSource
//go:generate moq -out mocks/arxiv_source.go -pkg mocks -skip-ensure -fmt goimports . ArxivSource
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/messenger.go -pkg mocks -skip-ensure -fmt goimports . Messenger

// JournalSource produces date-filtered items from one journal RSS feed.
type JournalSource interface {
	Fetch(ctx context.Context, journal config.Journal, targetDate time.Time) ([]domain.Item, error)
}

// ArxivSource produces date- and keyword-filtered items from an arXiv search.
type ArxivSource interface {
	Fetch(ctx context.Context, search config.Arxiv, targetDate time.Time) ([]domain.Item, error)
}

// Summarizer produces the digest text for one item.
type Summarizer interface {
	Summarize(ctx context.Context, title, abstract string) (string, error)
}

// Messenger is a workspace-bound messaging client: identity lookup,
// two-part digest posting and retention pruning.
type Messenger interface {
	Auth(ctx context.Context) (domain.Identity, error)
	Post(ctx context.Context, channel string, digest domain.Digest) error
	Prune(ctx context.Context, channel string, id domain.Identity) error
}

// Runner drives one full pass: for every configured workspace it resolves
// a token, authenticates once, ingests each journal and the arXiv source,
// summarizes and posts matching items, and prunes each source's channel.
// Everything runs sequentially on a single control flow.
type Runner struct {
	cfg          *config.Config
	secrets      *config.Secrets
	journals     JournalSource
	arxiv        ArxivSource
	summarizer   Summarizer
	newMessenger func(token string) Messenger

	now   func() time.Time
	sleep func(time.Duration)
}

// Params holds all runner dependencies.
type Params struct {
	Config       *config.Config
	Secrets      *config.Secrets
	Journals     JournalSource
	Arxiv        ArxivSource
	Summarizer   Summarizer
	NewMessenger func(token string) Messenger
}

// New creates a runner with the provided dependencies.
func New(p Params) *Runner {
	return &Runner{
		cfg:          p.Config,
		secrets:      p.Secrets,
		journals:     p.Journals,
		arxiv:        p.Arxiv,
		summarizer:   p.Summarizer,
		newMessenger: p.NewMessenger,
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

// Run processes all configured workspaces once. A workspace without a
// resolvable token is skipped, it never fails the run for its siblings.
func (r *Runner) Run(ctx context.Context) error {
	target := r.now().In(r.cfg.Location()).AddDate(0, 0, -r.cfg.DaysBack)
	lgr.Printf("[INFO] starting run, target date %s, %d workspaces",
		target.Format("2006-01-02"), len(r.cfg.Workspaces))

	for _, ws := range r.cfg.Workspaces {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.runWorkspace(ctx, ws, target)
	}
	return nil
}

func (r *Runner) runWorkspace(ctx context.Context, ws config.Workspace, target time.Time) {
	token, ok := r.secrets.TokenFor(ws.Name)
	if !ok {
		lgr.Printf("[ERROR] slack token not found for workspace %s, skipping", ws.Name)
		return
	}

	m := r.newMessenger(token)
	id, err := m.Auth(ctx)
	if err != nil {
		lgr.Printf("[ERROR] auth failed for workspace %s: %v", ws.Name, err)
		return
	}
	lgr.Printf("[INFO] workspace %s authenticated as user %s", ws.Name, id.UserID)

	for _, journal := range ws.Journals {
		items, err := r.journals.Fetch(ctx, journal, target)
		if err != nil {
			lgr.Printf("[WARN] fetch journal %s failed: %v", journal.Name, err)
		} else {
			r.postItems(ctx, m, journal.SlackChannelID, items)
		}
		if err := m.Prune(ctx, journal.SlackChannelID, id); err != nil {
			lgr.Printf("[WARN] prune channel %s failed: %v", journal.SlackChannelID, err)
		}
	}

	if ws.Arxiv != nil {
		items, err := r.arxiv.Fetch(ctx, *ws.Arxiv, target)
		if err != nil {
			lgr.Printf("[WARN] fetch arxiv failed: %v", err)
		} else {
			r.postItems(ctx, m, ws.Arxiv.SlackChannelID, items)
		}
		if err := m.Prune(ctx, ws.Arxiv.SlackChannelID, id); err != nil {
			lgr.Printf("[WARN] prune channel %s failed: %v", ws.Arxiv.SlackChannelID, err)
		}
	}
}

// postItems summarizes and posts each item, pacing with a fixed delay after
// every posted item. A failed summarization skips that item only, a failed
// post is logged and the run continues.
func (r *Runner) postItems(ctx context.Context, m Messenger, channel string, items []domain.Item) {
	for _, item := range items {
		summary, err := r.summarizer.Summarize(ctx, item.Title, item.Abstract)
		if err != nil {
			lgr.Printf("[WARN] summarize %q failed: %v", item.Title, err)
			continue
		}

		digest := domain.Digest{
			Title:    item.Title,
			Link:     item.Link,
			Summary:  summary,
			Abstract: item.Abstract,
		}
		if err := m.Post(ctx, channel, digest); err != nil {
			lgr.Printf("[WARN] post %q to %s failed: %v", item.Title, channel, err)
		}

		r.sleep(r.cfg.PostDelay)
	}
}
