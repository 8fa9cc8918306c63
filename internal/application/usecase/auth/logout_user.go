package auth

import (
	"context"

	"github.com/money-manager/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for logging out.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserUseCase handles session termination by revoking the refresh
// token. Access tokens are short-lived and expire on their own.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the refresh token. Revoking an already-revoked token is
// not an error.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	return uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)
}
