package entity

import (
	"fmt"
	"time"
)

// Known feed categories. The set is closed: sources carry exactly one of
// these values and the article listing filters on them.
const (
	CategoryTechWatch = "tech-watch"
	CategoryGaming    = "gaming"
	CategoryCooking   = "cooking"
	CategoryScience   = "science"
)

// Known extractor strategy names. Each source names the strategy used to
// pull items out of its feed; ExtractorRSS is the generic default.
const (
	ExtractorRSS    = "rss"
	ExtractorRawXML = "raw-xml"
)

// Source represents a registered feed in the aggregation system.
// Sources are managed by administrators and read by the ingestion
// pipeline; a run never mutates them.
type Source struct {
	ID        int64
	Name      string
	URL       string
	Category  string
	Extractor string
	CreatedAt time.Time
}

var validCategories = map[string]bool{
	CategoryTechWatch: true,
	CategoryGaming:    true,
	CategoryCooking:   true,
	CategoryScience:   true,
}

var validExtractors = map[string]bool{
	ExtractorRSS:    true,
	ExtractorRawXML: true,
}

// ValidCategory reports whether c is one of the known feed categories.
func ValidCategory(c string) bool {
	return validCategories[c]
}

// Validate checks the Source entity fields. An empty extractor is
// normalized to the generic RSS strategy for backward compatibility.
func (s *Source) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if err := ValidateURL(s.URL); err != nil {
		return err
	}
	if !validCategories[s.Category] {
		return &ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("invalid category: %s (must be tech-watch, gaming, cooking, or science)", s.Category),
		}
	}
	if s.Extractor == "" {
		s.Extractor = ExtractorRSS
	}
	if !validExtractors[s.Extractor] {
		return &ValidationError{
			Field:   "extractor",
			Message: fmt.Sprintf("invalid extractor: %s (must be rss or raw-xml)", s.Extractor),
		}
	}
	return nil
}
