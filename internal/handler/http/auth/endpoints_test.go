package auth

import "testing"

func TestIsPublicEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/health", true},
		{"/health?format=json", true},
		{"/health/", true},
		{"/healthcheck", false},
		{"/health/detail", false},
		{"/ready", true},
		{"/live", true},
		{"/metrics", true},
		{"/auth/token", true},
		{"/articles", true},
		{"/articles/42", true},
		{"/sources", false},
		{"/api/update-articles", false},
		{"/", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsPublicEndpoint(tt.path); got != tt.want {
				t.Errorf("IsPublicEndpoint(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
