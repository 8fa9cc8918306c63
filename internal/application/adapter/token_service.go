// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair holds an access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims holds the identity claims extracted from a validated token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the contract for issuing and validating auth tokens.
type TokenService interface {
	// GenerateTokenPair issues a new access/refresh token pair and records
	// the refresh token as valid.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken revokes a refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// IsRefreshTokenValid reports whether a refresh token is still valid.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
}

// RefreshTokenStore tracks which refresh tokens are currently valid.
type RefreshTokenStore interface {
	// Save records a refresh token as valid until expiry.
	Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error

	// IsValid reports whether the refresh token is recorded and unexpired.
	IsValid(ctx context.Context, token string) (bool, error)

	// Invalidate removes a refresh token.
	Invalidate(ctx context.Context, token string) error
}
