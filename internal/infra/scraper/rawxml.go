package scraper

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"monfluxrss/internal/usecase/fetch"
)

// maxRawFeedBytes caps how much of a feed document is read into memory.
const maxRawFeedBytes = 10 << 20 // 10 MiB

// rssDateLayouts are the pubDate formats seen in the wild, tried in order.
var rssDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02T15:04:05-07:00",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// rawRSS mirrors the subset of the RSS 2.0 document the extractor needs.
// The Encoded field binds to the namespace-qualified content:encoded
// element, which some feeds use for the full article body while keeping
// only a teaser in description.
type rawRSS struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rawItem `xml:"item"`
	} `xml:"channel"`
}

type rawItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description"`
	Encoded     string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
	PubDate     string `xml:"pubDate"`
}

// RawXMLFetcher implements fetch.FeedFetcher by decoding the RSS document
// directly with encoding/xml. It exists for feeds where the generic parser
// loses the content:encoded body; item content prefers content:encoded over
// description when both are present.
type RawXMLFetcher struct {
	client *http.Client
}

// NewRawXMLFetcher creates a new RawXMLFetcher with the given HTTP client.
func NewRawXMLFetcher(client *http.Client) *RawXMLFetcher {
	return &RawXMLFetcher{client: client}
}

// Fetch downloads the feed URL and decodes its items from the raw XML.
func (f *RawXMLFetcher) Fetch(ctx context.Context, feedURL string) ([]fetch.FeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, maxRawFeedBytes)

	var doc rawRSS
	decoder := xml.NewDecoder(body)
	// French feeds occasionally declare ISO-8859-1; pass bytes through and
	// let the XML decoder deal with what it can.
	decoder.CharsetReader = passthroughCharset
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode feed xml: %w", err)
	}

	items := make([]fetch.FeedItem, 0, len(doc.Channel.Items))
	for _, it := range doc.Channel.Items {
		description := it.Encoded
		if description == "" {
			description = it.Description
		}

		items = append(items, fetch.FeedItem{
			Title:       it.Title,
			Link:        it.Link,
			GUID:        it.GUID,
			Description: description,
			PublishedAt: parsePubDate(it.PubDate),
		})
	}

	return items, nil
}

// parsePubDate tries the usual RSS date layouts and returns nil when none
// matches; the pipeline treats a missing date as "published now".
func parsePubDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range rssDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// passthroughCharset accepts any declared charset and reads the bytes as-is.
func passthroughCharset(_ string, input io.Reader) (io.Reader, error) {
	return input, nil
}
