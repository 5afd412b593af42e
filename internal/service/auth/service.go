// Package auth holds the transport-agnostic part of authentication: the
// provider abstraction and the service that decides which paths require a
// token at all.
package auth

import (
	"context"
	"strings"
)

// Credentials is a username/password pair as submitted by a client.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements is the password policy a provider enforces.
type CredentialRequirements struct {
	MinPasswordLength int
	WeakPasswords     []string
}

// AuthProvider validates credentials. The single implementation reads the
// admin account from the environment, but token issuance only depends on
// this interface.
type AuthProvider interface {
	ValidateCredentials(ctx context.Context, creds Credentials) error
	GetRequirements() CredentialRequirements
	Name() string
}

// AuthService ties a provider to the list of endpoints that skip
// authentication entirely.
type AuthService struct {
	provider        AuthProvider
	publicEndpoints []string
}

func NewAuthService(provider AuthProvider, publicEndpoints []string) *AuthService {
	return &AuthService{
		provider:        provider,
		publicEndpoints: publicEndpoints,
	}
}

// ValidateCredentials delegates to the configured provider.
func (s *AuthService) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// IsPublicEndpoint reports whether path matches one of the configured
// public endpoint prefixes.
func (s *AuthService) IsPublicEndpoint(path string) bool {
	for _, endpoint := range s.publicEndpoints {
		if strings.HasPrefix(path, endpoint) {
			return true
		}
	}
	return false
}
