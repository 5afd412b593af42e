// Package source provides use cases for managing registered feeds.
// It implements business logic for creating, listing, and deleting sources,
// including validation and interaction with the source repository.
package source

import "errors"

// Sentinel errors for source use case operations.
var (
	// ErrSourceNotFound indicates that the requested source was not found.
	ErrSourceNotFound = errors.New("source not found")

	// ErrDuplicateSource indicates that a source with the same feed URL already exists.
	// This prevents duplicate sources from being registered.
	ErrDuplicateSource = errors.New("source with this feed URL already exists")
)
