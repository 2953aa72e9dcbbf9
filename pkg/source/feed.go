package source

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/readscope/pkg/domain"
)

// FeedAdapter reads forum thread listings from RSS/Atom feeds. Works with any
// forum exposing a feed, e.g. Discourse /latest.rss.
type FeedAdapter struct {
	parser    *gofeed.Parser
	sanitizer *bluemonday.Policy
	timeout   time.Duration
}

// NewFeedAdapter creates a feed-backed source adapter
func NewFeedAdapter(timeout time.Duration, userAgent string) *FeedAdapter {
	parser := gofeed.NewParser()
	if userAgent != "" {
		parser.UserAgent = userAgent
	}
	return &FeedAdapter{
		parser:    parser,
		sanitizer: bluemonday.StrictPolicy(),
		timeout:   timeout,
	}
}

// Fetch retrieves the forum's feed and converts items to threads. Feed text is
// stripped to plain text, forum software loves to smuggle markup into titles.
func (a *FeedAdapter) Fetch(ctx context.Context, forum Forum) ([]domain.Thread, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	feed, err := a.parser.ParseURLWithContext(forum.FeedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", forum.FeedURL, err)
	}

	now := time.Now()
	threads := make([]domain.Thread, 0, len(feed.Items))
	for _, item := range feed.Items {
		thread := domain.Thread{
			ID:         forum.ID + ":" + a.itemGUID(feed, item),
			ForumID:    forum.ID,
			URL:        item.Link,
			Title:      a.plainText(item.Title),
			LastSeenAt: now,
		}

		for _, cat := range item.Categories {
			if tag := strings.ToLower(a.plainText(cat)); tag != "" {
				thread.Tags = append(thread.Tags, tag)
			}
		}
		if len(thread.Tags) > 0 {
			thread.Category = thread.Tags[0]
		}

		if item.PublishedParsed != nil {
			thread.PublishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			thread.PublishedAt = *item.UpdatedParsed
		}

		threads = append(threads, thread)
	}
	return threads, nil
}

// itemGUID picks a stable per-item identifier with fallbacks for sloppy feeds
func (a *FeedAdapter) itemGUID(feed *gofeed.Feed, item *gofeed.Item) string {
	switch {
	case item.GUID != "":
		return item.GUID
	case item.Link != "":
		return item.Link
	}
	return fmt.Sprintf("%s-%s", feed.Title, item.Title)
}

// plainText strips markup and entities from feed-supplied text
func (a *FeedAdapter) plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(a.sanitizer.Sanitize(s)))
}
