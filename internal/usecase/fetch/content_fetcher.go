package fetch

import (
	"context"
	"errors"
)

// ContentFetcher is an interface for fetching full article content from URLs.
// Implementations should extract clean article text from web pages.
//
// This interface supports description enhancement for feeds that only carry
// a short excerpt instead of a usable summary. Fetching the article page and
// extracting its text gives readers something useful to skim.
//
// Security considerations:
//   - Implementations MUST prevent Server-Side Request Forgery (SSRF) attacks
//   - Implementations MUST enforce size limits to prevent memory exhaustion
//   - Implementations MUST enforce timeouts to prevent resource starvation
//   - Implementations MUST validate redirect targets
type ContentFetcher interface {
	// FetchContent fetches and extracts article content from the given URL.
	//
	// Returns the extracted article text, or one of the sentinel errors below
	// when fetching or extraction fails. The caller should handle errors
	// gracefully and fall back to the feed description.
	FetchContent(ctx context.Context, url string) (string, error)
}

// Sentinel errors for content fetching operations.
// These errors allow callers to distinguish between different failure modes
// and implement appropriate fallback strategies.
var (
	// ErrInvalidURL indicates the URL format is invalid or uses an unsupported scheme.
	// Only http:// and https:// schemes are supported.
	ErrInvalidURL = errors.New("invalid URL or unsupported scheme")

	// ErrPrivateIP indicates the URL resolves to a private IP address.
	// This error prevents Server-Side Request Forgery (SSRF) attacks.
	ErrPrivateIP = errors.New("private IP access denied (SSRF prevention)")

	// ErrTooManyRedirects indicates the redirect chain exceeded the configured maximum.
	// This prevents infinite redirect loops and redirect-based attacks.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates the response body exceeded the size limit.
	// This prevents memory exhaustion from oversized responses.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("request timeout")

	// ErrReadabilityFailed indicates content extraction failed.
	// Callers should fall back to the feed description when this error occurs.
	ErrReadabilityFailed = errors.New("content extraction failed")
)
