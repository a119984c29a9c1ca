// Package feed pages through JSON news feeds.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatus is returned for non-2xx feed responses.
var ErrUnexpectedStatus = errors.New("unexpected feed status")

// Article is one feed entry.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	URL         string    `json:"url"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"publishedAt"`
}

type page struct {
	Articles []Article `json:"articles"`
}

type client struct {
	endpoint   string
	pageSize   int
	httpClient *retryablehttp.Client
}

// NewClient returns a feed reader for endpoint. Pages are requested with the
// page, pageSize and since query parameters.
func NewClient(httpClient *retryablehttp.Client, endpoint string, pageSize int) *client {
	return &client{
		endpoint:   endpoint,
		pageSize:   pageSize,
		httpClient: httpClient,
	}
}

// FetchPage returns one page of articles published after since. An empty page
// marks the end of the feed.
func (c *client) FetchPage(ctx context.Context, since time.Time, n int) ([]Article, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(n))
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	q.Set("since", strconv.FormatInt(since.Unix(), 10))
	u.RawQuery = q.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status)
	}

	var p page
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding feed page %d: %w", n, err)
	}

	return p.Articles, nil
}
