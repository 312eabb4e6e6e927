// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TokenClaims represents the claims extracted from a validated access token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenService is the boundary to the identity collaborator: the core never
// authenticates, it only validates the bearer token handed to every entry
// point and extracts the opaque user handle.
type TokenService interface {
	// ValidateAccessToken validates a JWT access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// GenerateAccessToken creates a signed access token for the given user.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (string, error)
}
