package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperbot/pkg/config"
)

func rssDoc(items string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Test Journal</title><link>http://example.com</link>` + items + `</channel></rss>`
}

func TestIngestor_Fetch_FiltersByTargetDate(t *testing.T) {
	target := time.Date(2025, 4, 26, 0, 0, 0, 0, jst)
	onTarget := time.Date(2025, 4, 26, 9, 30, 0, 0, jst)
	dayBefore := onTarget.AddDate(0, 0, -1)

	doc := rssDoc(fmt.Sprintf(`
<item><title>fresh paper</title><link>http://example.com/1</link><description>abstract one</description><pubDate>%s</pubDate></item>
<item><title>stale paper</title><link>http://example.com/2</link><description>abstract two</description><pubDate>%s</pubDate></item>
<item><title>undated paper</title><link>http://example.com/3</link><description>no date anywhere</description></item>`,
		onTarget.Format(time.RFC1123Z), dayBefore.Format(time.RFC1123Z)))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	ing := NewIngestor(5*time.Second, jst)
	journal := config.Journal{Name: "test", RSSURL: srv.URL, SlackChannelID: "C123", AbstractTag: "summary"}

	items, err := ing.Fetch(context.Background(), journal, target)
	require.NoError(t, err)
	require.Len(t, items, 1, "only the entry on the target date must be emitted")
	assert.Equal(t, "fresh paper", items[0].Title)
	assert.Equal(t, "http://example.com/1", items[0].Link)
	assert.Equal(t, "abstract one", items[0].Abstract)
	assert.Equal(t, 26, items[0].Published.In(jst).Day())
}

func TestIngestor_Fetch_DescriptionDatePhrase(t *testing.T) {
	target := time.Date(2025, 4, 26, 0, 0, 0, 0, jst)

	doc := rssDoc(`
<item><title>sciencedirect style</title><link>http://example.com/1</link>
<description>&lt;p&gt;Some abstract.&lt;/p&gt; Publication date: 26 April 2025</description></item>`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	ing := NewIngestor(5*time.Second, jst)
	journal := config.Journal{Name: "sd", RSSURL: srv.URL, SlackChannelID: "C123", AbstractTag: "description"}

	items, err := ing.Fetch(context.Background(), journal, target)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "sciencedirect style", items[0].Title)
	assert.NotContains(t, items[0].Abstract, "<")
}

func TestIngestor_Fetch_EmptyResultOnNoMatches(t *testing.T) {
	target := time.Date(2025, 4, 26, 0, 0, 0, 0, jst)
	old := time.Date(2025, 1, 1, 12, 0, 0, 0, jst)

	doc := rssDoc(fmt.Sprintf(`
<item><title>old</title><link>http://example.com/1</link><pubDate>%s</pubDate></item>`, old.Format(time.RFC1123Z)))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	ing := NewIngestor(5*time.Second, jst)
	journal := config.Journal{Name: "test", RSSURL: srv.URL, SlackChannelID: "C123", AbstractTag: "summary"}

	items, err := ing.Fetch(context.Background(), journal, target)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestIngestor_Fetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ing := NewIngestor(time.Second, jst)
	ing.retryDelay = time.Millisecond // keep the backoff out of test time
	journal := config.Journal{Name: "broken", RSSURL: srv.URL, SlackChannelID: "C123", AbstractTag: "summary"}

	_, err := ing.Fetch(context.Background(), journal, time.Date(2025, 4, 26, 0, 0, 0, 0, jst))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse feed")
}
