package scraper

import (
	"net/http"

	"monfluxrss/internal/domain/entity"
	"monfluxrss/internal/usecase/fetch"
)

// ExtractorFactory creates the extractor strategy instances for the pipeline.
// It provides a centralized way to instantiate extractors with a shared,
// consistently configured HTTP client.
type ExtractorFactory struct {
	client *http.Client
}

// NewExtractorFactory creates a new ExtractorFactory with the given HTTP client.
// The HTTP client should be configured with appropriate timeouts.
func NewExtractorFactory(client *http.Client) *ExtractorFactory {
	return &ExtractorFactory{client: client}
}

// CreateExtractors returns the registry of named extractor strategies.
// The keys are the extractor names stored on sources and the values are the
// corresponding FeedFetcher implementations. The fetch service routes each
// source to its strategy by name; unknown names fall back to the default.
func (f *ExtractorFactory) CreateExtractors() map[string]fetch.FeedFetcher {
	return map[string]fetch.FeedFetcher{
		entity.ExtractorRSS:    NewRSSFetcher(f.client),
		entity.ExtractorRawXML: NewRawXMLFetcher(f.client),
	}
}
