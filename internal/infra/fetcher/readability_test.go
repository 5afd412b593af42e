package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"monfluxrss/internal/usecase/fetch"
)

func testConfig() ContentFetchConfig {
	cfg := DefaultConfig()
	cfg.Enabled = true
	// httptest servers listen on 127.0.0.1
	cfg.DenyPrivateIPs = false
	return cfg
}

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Une recette simple</title></head>
<body>
<article>
<h1>Une recette simple</h1>
<p>Commencez par préchauffer le four à 180 degrés. Pendant ce temps,
mélangez la farine, le sucre et les oeufs dans un grand saladier
jusqu'à obtenir une pâte homogène et sans grumeaux.</p>
<p>Versez la préparation dans un moule beurré et enfournez pour
quarante minutes environ, en surveillant la coloration.</p>
</article>
</body>
</html>`

func TestReadabilityFetcher_FetchContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	f := NewReadabilityFetcher(testConfig())
	content, err := f.FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}
	if !strings.Contains(content, "préchauffer le four") {
		t.Errorf("content missing article text: %q", content)
	}
	if strings.Contains(content, "<p>") {
		t.Errorf("content still contains HTML tags: %q", content)
	}
}

func TestReadabilityFetcher_FetchContent_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	f := NewReadabilityFetcher(testConfig())
	if _, err := f.FetchContent(context.Background(), server.URL); err == nil {
		t.Fatal("FetchContent() error = nil, want error")
	}
}

func TestReadabilityFetcher_FetchContent_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>" + strings.Repeat("x", 4096) + "</body></html>"))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.MaxBodySize = 1024
	f := NewReadabilityFetcher(cfg)

	_, err := f.FetchContent(context.Background(), server.URL)
	if !errors.Is(err, fetch.ErrBodyTooLarge) {
		t.Fatalf("want ErrBodyTooLarge, got %v", err)
	}
}

func TestReadabilityFetcher_FetchContent_InvalidScheme(t *testing.T) {
	f := NewReadabilityFetcher(testConfig())
	_, err := f.FetchContent(context.Background(), "ftp://example.com/article")
	if !errors.Is(err, fetch.ErrInvalidURL) {
		t.Fatalf("want ErrInvalidURL, got %v", err)
	}
}

func TestReadabilityFetcher_FetchContent_PrivateIPDenied(t *testing.T) {
	cfg := testConfig()
	cfg.DenyPrivateIPs = true
	f := NewReadabilityFetcher(cfg)

	_, err := f.FetchContent(context.Background(), "http://127.0.0.1/article")
	if !errors.Is(err, fetch.ErrPrivateIP) {
		t.Fatalf("want ErrPrivateIP, got %v", err)
	}
}

func TestReadabilityFetcher_FetchContent_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Timeout = 30 * time.Millisecond
	f := NewReadabilityFetcher(cfg)

	if _, err := f.FetchContent(context.Background(), server.URL); err == nil {
		t.Fatal("FetchContent() error = nil, want timeout error")
	}
}

func TestContentFetchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ContentFetchConfig)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *ContentFetchConfig) {}, wantErr: false},
		{name: "negative threshold", mutate: func(c *ContentFetchConfig) { c.Threshold = -1 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *ContentFetchConfig) { c.Timeout = 0 }, wantErr: true},
		{name: "body size too small", mutate: func(c *ContentFetchConfig) { c.MaxBodySize = 100 }, wantErr: true},
		{name: "too many redirects", mutate: func(c *ContentFetchConfig) { c.MaxRedirects = 50 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CONTENT_FETCH_ENABLED", "true")
	t.Setenv("CONTENT_FETCH_THRESHOLD", "500")
	t.Setenv("CONTENT_FETCH_TIMEOUT", "5s")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}
	if !cfg.Enabled {
		t.Error("Enabled = false, want true")
	}
	if cfg.Threshold != 500 {
		t.Errorf("Threshold = %d, want 500", cfg.Threshold)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestLoadConfigFromEnv_InvalidValue(t *testing.T) {
	t.Setenv("CONTENT_FETCH_THRESHOLD", "lots")

	if _, err := LoadConfigFromEnv(); err == nil {
		t.Fatal("LoadConfigFromEnv() error = nil, want error")
	}
}
