// Package pathutil has small helpers shared by the HTTP handlers: integer
// ID extraction from paths and path normalization for metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// Dynamic routes collapse to a template so the method/path metric labels
// stay bounded no matter how many articles or sources exist. Compiled once
// at init.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/articles/\d+$`), template: "/articles/:id"},
	{pattern: regexp.MustCompile(`^/sources/\d+$`), template: "/sources/:id"},
}

// NormalizePath maps a request path to its route template: /articles/123
// becomes /articles/:id. Static paths (/health, /metrics, /auth/token,
// /api/update-articles) pass through unchanged, as does anything that
// matches no known route.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}

	return path
}
