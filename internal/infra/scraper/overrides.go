package scraper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"monfluxrss/internal/domain/entity"
)

// ExtractorOverride maps one feed URL to an extractor strategy name.
type ExtractorOverride struct {
	URL       string `yaml:"url"`
	Extractor string `yaml:"extractor"`
}

// overridesFile is the on-disk shape of the overrides document.
type overridesFile struct {
	Overrides []ExtractorOverride `yaml:"overrides"`
}

// LoadExtractorOverrides reads a YAML file that pins specific feed URLs to
// extractor strategies, overriding whatever the source row says. This lets
// operators reroute a broken feed without touching the database.
//
// An empty path returns an empty map: the feature is opt-in.
func LoadExtractorOverrides(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides file: %w", err)
	}

	var doc overridesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse overrides file: %w", err)
	}

	result := make(map[string]string, len(doc.Overrides))
	for _, o := range doc.Overrides {
		if o.URL == "" {
			return nil, fmt.Errorf("overrides file: entry with empty url")
		}
		if o.Extractor != entity.ExtractorRSS && o.Extractor != entity.ExtractorRawXML {
			return nil, fmt.Errorf("overrides file: unknown extractor %q for %s", o.Extractor, o.URL)
		}
		result[o.URL] = o.Extractor
	}
	return result, nil
}
