package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// CustomClaims represents the JWT claims used by the application.
type CustomClaims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	TokenType string    `json:"token_type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService implements adapter.TokenService using HS256-signed JWTs.
// Refresh tokens are additionally tracked in a RefreshTokenStore so they can
// be revoked before expiry.
type TokenService struct {
	secretKey       []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
	store           adapter.RefreshTokenStore
	clock           adapter.Clock
}

// NewTokenService creates a new TokenService.
func NewTokenService(secretKey string, accessDuration, refreshDuration time.Duration, store adapter.RefreshTokenStore, clock adapter.Clock) *TokenService {
	return &TokenService{
		secretKey:       []byte(secretKey),
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
		store:           store,
		clock:           clock,
	}
}

// GenerateTokenPair issues a new access/refresh token pair and records the
// refresh token as valid for its full lifetime.
func (s *TokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	now := s.clock.Now()

	accessToken, err := s.signToken(userID, email, "access", now, s.accessDuration)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(userID, email, "refresh", now, s.refreshDuration)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, refreshToken, userID, s.refreshDuration); err != nil {
		return nil, err
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *TokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validateToken(token, "access")
}

// ValidateRefreshToken validates a refresh token and returns its claims.
func (s *TokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validateToken(token, "refresh")
}

// InvalidateRefreshToken revokes a refresh token.
func (s *TokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return s.store.Invalidate(ctx, token)
}

// IsRefreshTokenValid reports whether a refresh token is still recorded.
func (s *TokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return s.store.IsValid(ctx, token)
}

func (s *TokenService) signToken(userID uuid.UUID, email, tokenType string, now time.Time, duration time.Duration) (string, error) {
	claims := CustomClaims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

func (s *TokenService) validateToken(tokenString, wantType string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerror.ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"token has expired",
				domainerror.ErrExpiredToken,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			domainerror.ErrInvalidToken,
		)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || claims.TokenType != wantType {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			domainerror.ErrInvalidToken,
		)
	}

	return &adapter.TokenClaims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
