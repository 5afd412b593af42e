// Package scraper provides the feed extractor strategies used by the
// ingestion pipeline: a generic RSS/Atom fetcher built on gofeed and a
// raw XML fallback for feeds the generic parser cannot fully read.
package scraper

import (
	"context"
	"net/http"

	"github.com/mmcdole/gofeed"

	"monfluxrss/internal/usecase/fetch"
)

// userAgent identifies the crawler to upstream feed servers.
const userAgent = "MonFluxRSSBot"

// RSSFetcher implements fetch.FeedFetcher using the gofeed library.
// It handles both RSS and Atom feeds transparently.
type RSSFetcher struct {
	client *http.Client
}

// NewRSSFetcher creates a new RSSFetcher with the given HTTP client.
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	return &RSSFetcher{client: client}
}

// Fetch retrieves and parses an RSS/Atom feed from the given URL.
// Returns a slice of FeedItem containing the parsed feed entries.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]fetch.FeedItem, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = f.client

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]fetch.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		// full content when the feed carries it, description otherwise
		description := it.Content
		if description == "" {
			description = it.Description
		}

		items = append(items, fetch.FeedItem{
			Title:       it.Title,
			Link:        it.Link,
			GUID:        it.GUID,
			Description: description,
			PublishedAt: it.PublishedParsed,
		})
	}

	return items, nil
}
