package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/mmcdole/gofeed"

	"paperbot/pkg/config"
	"paperbot/pkg/domain"
)

// Ingestor fetches journal RSS/Atom feeds and filters entries down to a
// single target publication date.
type Ingestor struct {
	parser     *gofeed.Parser
	timeout    time.Duration
	loc        *time.Location
	retryDelay time.Duration
}

// NewIngestor creates an RSS ingestor anchored to the fixed timezone.
func NewIngestor(timeout time.Duration, loc *time.Location) *Ingestor {
	return &Ingestor{
		parser:     gofeed.NewParser(),
		timeout:    timeout,
		loc:        loc,
		retryDelay: time.Second,
	}
}

// Fetch retrieves a journal feed and returns the entries published exactly
// on targetDate, in feed order. Entries without a resolvable publication
// date are dropped. The fetch itself is retried with backoff on transient
// failures.
func (i *Ingestor) Fetch(ctx context.Context, journal config.Journal, targetDate time.Time) ([]domain.Item, error) {
	var parsed *gofeed.Feed
	retrier := repeater.NewBackoff(3, i.retryDelay, repeater.WithMaxDelay(5*time.Second))
	err := retrier.Do(ctx, func() error {
		fetchCtx, cancel := context.WithTimeout(ctx, i.timeout)
		defer cancel()
		var ferr error
		parsed, ferr = i.parser.ParseURLWithContext(journal.RSSURL, fetchCtx)
		return ferr
	})
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", journal.RSSURL, err)
	}

	items := make([]domain.Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		pub := ResolveDate(entry, i.loc)
		if pub.IsZero() || !sameDate(pub, targetDate) {
			continue
		}
		items = append(items, domain.Item{
			Title:     entry.Title,
			Link:      entry.Link,
			Published: pub,
			Abstract:  ExtractAbstract(entry, journal.AbstractTag),
		})
	}

	lgr.Printf("[DEBUG] journal %s: %d of %d entries match %s",
		journal.Name, len(items), len(parsed.Items), targetDate.Format("2006-01-02"))
	return items, nil
}

// sameDate reports whether two times fall on the same calendar date,
// each compared in the timezone it carries
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
