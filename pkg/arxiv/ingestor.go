package arxiv

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"paperbot/pkg/config"
	"paperbot/pkg/domain"
)

// Searcher runs one arXiv query and returns raw results.
type Searcher interface {
	Search(ctx context.Context, categories []string, maxResults int) ([]Result, error)
}

// Ingestor filters arXiv search results down to the target submission date
// and an optional keyword set.
type Ingestor struct {
	searcher Searcher
	loc      *time.Location
}

// NewIngestor creates an arXiv ingestor anchored to the fixed timezone.
func NewIngestor(searcher Searcher, loc *time.Location) *Ingestor {
	return &Ingestor{searcher: searcher, loc: loc}
}

// Fetch queries the search API once and returns the papers published
// exactly on targetDate. The multi-line summary is joined into a single
// line; when keywords are configured at least one must occur in the joined
// summary, case-insensitively.
func (i *Ingestor) Fetch(ctx context.Context, search config.Arxiv, targetDate time.Time) ([]domain.Item, error) {
	results, err := i.searcher.Search(ctx, search.Categories, search.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("arxiv search: %w", err)
	}

	keywords := make([]string, 0, len(search.Keywords))
	for _, kw := range search.Keywords {
		keywords = append(keywords, strings.ToLower(kw))
	}

	items := make([]domain.Item, 0)
	for _, r := range results {
		if r.Published.IsZero() {
			continue
		}
		pub := r.Published.In(i.loc)
		if !sameDate(pub, targetDate) {
			continue
		}

		abstract := joinLines(r.Summary)
		if len(keywords) > 0 && !containsAny(strings.ToLower(abstract), keywords) {
			continue
		}

		items = append(items, domain.Item{
			Title:     r.Title,
			Link:      r.ID,
			Published: pub,
			Abstract:  abstract,
		})
	}

	lgr.Printf("[DEBUG] arxiv: %d of %d results match %s",
		len(items), len(results), targetDate.Format("2006-01-02"))
	return items, nil
}

// joinLines merges a multi-line summary into one line
func joinLines(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}

// containsAny reports whether any keyword occurs as a substring of text
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// sameDate reports whether two times fall on the same calendar date
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
