package pathutil

import (
	"errors"
	"testing"
)

/*────────────────────  test cases  ────────────────────*/

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    int64
		wantErr bool
	}{
		{"article id", "/articles/123", "/articles/", 123, false},
		{"source id", "/sources/7", "/sources/", 7, false},
		{"large id", "/articles/9007199254740991", "/articles/", 9007199254740991, false},
		{"zero id", "/articles/0", "/articles/", 0, true},
		{"negative id", "/articles/-5", "/articles/", 0, true},
		{"non numeric", "/articles/abc", "/articles/", 0, true},
		{"decimal", "/articles/1.5", "/articles/", 0, true},
		{"empty remainder", "/articles/", "/articles/", 0, true},
		{"trailing segment", "/articles/1/extra", "/articles/", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractID(tt.path, tt.prefix)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Errorf("ExtractID(%q) error = %v, want ErrInvalidID", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractID(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("ExtractID(%q) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"article detail", "/articles/123", "/articles/:id"},
		{"another article", "/articles/456789", "/articles/:id"},
		{"source detail", "/sources/7", "/sources/:id"},
		{"article list", "/articles", "/articles"},
		{"source list", "/sources", "/sources"},
		{"refresh trigger", "/api/update-articles", "/api/update-articles"},
		{"health", "/health", "/health"},
		{"metrics", "/metrics", "/metrics"},
		{"token", "/auth/token", "/auth/token"},
		{"root", "/", "/"},
		{"query string stripped", "/articles/123?page=2", "/articles/:id"},
		{"trailing slash stripped", "/articles/123/", "/articles/:id"},
		{"list with query", "/articles?category=tech-watch", "/articles"},
		{"unknown path untouched", "/nope/123", "/nope/123"},
		{"non numeric segment untouched", "/articles/abc", "/articles/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func BenchmarkNormalizePath(b *testing.B) {
	paths := []string{
		"/articles/123",
		"/articles",
		"/sources/7",
		"/health",
		"/articles/123?page=2",
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		NormalizePath(paths[i%len(paths)])
	}
}
