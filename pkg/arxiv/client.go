package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

const defaultBaseURL = "http://export.arxiv.org/api/query"

// Client queries the arXiv metadata search API, which speaks Atom over
// plain HTTP. See https://info.arxiv.org/help/api/index.html
type Client struct {
	baseURL    string
	client     *http.Client
	retryDelay time.Duration
}

// NewClient creates an arXiv API client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		client:     &http.Client{Timeout: timeout},
		retryDelay: time.Second,
	}
}

// Result is one paper from a search response.
type Result struct {
	ID        string // abs page URL, doubles as the item link
	Title     string
	Summary   string
	Published time.Time
}

// atomFeed is the Atom response envelope from the arXiv API
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

// atomEntry is a single paper entry
type atomEntry struct {
	ID        string `xml:"id"`
	Title     string `xml:"title"`
	Published string `xml:"published"`
	Updated   string `xml:"updated"`
	Summary   string `xml:"summary"`
}

// Search runs one query with the categories OR-joined, newest submissions
// first, capped at maxResults. The request is retried with backoff on
// transient failures.
func (c *Client) Search(ctx context.Context, categories []string, maxResults int) ([]Result, error) {
	q := url.Values{}
	q.Set("search_query", strings.Join(categories, " OR "))
	q.Set("start", "0")
	q.Set("max_results", strconv.Itoa(maxResults))
	q.Set("sortBy", "submittedDate")
	q.Set("sortOrder", "descending")
	reqURL := c.baseURL + "?" + q.Encode()

	var feed atomFeed
	retrier := repeater.NewBackoff(3, c.retryDelay, repeater.WithMaxDelay(5*time.Second))
	err := retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("query arxiv: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		feed = atomFeed{}
		if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
			return fmt.Errorf("decode atom feed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		r := Result{
			ID:      strings.TrimSpace(e.ID),
			Title:   strings.TrimSpace(e.Title),
			Summary: e.Summary,
		}
		// entries with an unparseable date keep a zero Published and are
		// dropped by the date filter downstream
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Published)); err == nil {
			r.Published = t
		}
		results = append(results, r)
	}
	return results, nil
}
