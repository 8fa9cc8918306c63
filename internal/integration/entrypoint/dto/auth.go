package dto

import "github.com/money-manager/backend/internal/application/usecase/auth"

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh and
// logout.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse represents the authenticated user in API responses.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse represents a successful authentication.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// NewAuthResponse maps an auth use case output to its response shape.
func NewAuthResponse(output *auth.AuthOutput) AuthResponse {
	return AuthResponse{
		User: UserResponse{
			ID:    output.UserID.String(),
			Email: output.Email,
			Name:  output.Name,
		},
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}

// TokenPairResponse represents a rotated token pair.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
