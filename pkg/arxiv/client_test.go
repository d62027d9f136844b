package arxiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const atomDoc = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2504.12345v1</id>
    <title>Deep Learning for
 Carbon Markets</title>
    <published>2025-04-26T01:30:00Z</published>
    <updated>2025-04-26T01:30:00Z</updated>
    <summary>We study carbon markets.
Results are promising.</summary>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2504.99999v1</id>
    <title>Another Paper</title>
    <published>not-a-date</published>
    <updated>2025-04-25T00:00:00Z</updated>
    <summary>Something else.</summary>
  </entry>
</feed>`

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "cs.AI OR cs.LG", q.Get("search_query"))
		assert.Equal(t, "0", q.Get("start"))
		assert.Equal(t, "100", q.Get("max_results"))
		assert.Equal(t, "submittedDate", q.Get("sortBy"))
		assert.Equal(t, "descending", q.Get("sortOrder"))
		_, _ = w.Write([]byte(atomDoc))
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	c.baseURL = srv.URL

	results, err := c.Search(context.Background(), []string{"cs.AI", "cs.LG"}, 100)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "http://arxiv.org/abs/2504.12345v1", results[0].ID)
	assert.Equal(t, time.Date(2025, 4, 26, 1, 30, 0, 0, time.UTC).Unix(), results[0].Published.Unix())
	assert.Contains(t, results[0].Summary, "carbon markets")

	// unparseable published date stays zero, filtered out downstream
	assert.True(t, results[1].Published.IsZero())
}

func TestClient_Search_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(time.Second)
	c.baseURL = srv.URL
	c.retryDelay = time.Millisecond

	_, err := c.Search(context.Background(), []string{"cs.AI"}, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}

func TestClient_Search_BadXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("this is not xml at all"))
	}))
	defer srv.Close()

	c := NewClient(time.Second)
	c.baseURL = srv.URL
	c.retryDelay = time.Millisecond

	_, err := c.Search(context.Background(), []string{"cs.AI"}, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode atom feed")
}
