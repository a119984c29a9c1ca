// Package news is a timestamp channel that broadcasts every article of a
// paginated JSON feed once.
package news

import (
	"context"
	"iter"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/infra/feed"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/showrunner"
)

// TaskName is the name the articles task registers under.
const TaskName = "articles"

// Feed is the subset of the feed client the task reads.
type Feed interface {
	FetchPage(ctx context.Context, since time.Time, n int) ([]feed.Article, error)
}

type source struct {
	feed Feed
}

var _ showrunner.TimeSource[feed.Article] = source{}

func (s source) Time(a feed.Article) time.Time {
	return a.PublishedAt
}

func (s source) Fetch(ctx context.Context, since time.Time, _ showrunner.Overrides) iter.Seq2[feed.Article, error] {
	return showrunner.Items(showrunner.Pages(ctx, 1, func(ctx context.Context, page int) ([]feed.Article, error) {
		return s.feed.FetchPage(ctx, since, page)
	}))
}

func (s source) Key(a feed.Article) string {
	if a.ID != "" {
		return a.ID
	}
	return a.URL
}

func (s source) Request(a feed.Article) (notify.Request, bool) {
	if a.Title == "" {
		return notify.Request{}, false
	}

	body := a.Summary
	if body == "" {
		body = a.Title
	}

	return notify.Request{
		Type:           notify.Broadcast,
		Title:          a.Title,
		Message:        body,
		PayloadTitle:   a.Title,
		PayloadMessage: body,
		CTA:            a.URL,
		Image:          a.Image,
	}, true
}

// NewTask builds the articles task. The checkpoint only moves once at least
// one article was delivered or queued.
func NewTask(cc *showrunner.ChannelContext, f Feed, opts ...showrunner.TaskOption) *showrunner.TimestampTask[feed.Article] {
	opts = append([]showrunner.TaskOption{showrunner.WithAdvancePolicy(showrunner.AdvanceOnNotify)}, opts...)

	return showrunner.NewTimestampTask(cc, TaskName, source{feed: f}, opts...)
}
