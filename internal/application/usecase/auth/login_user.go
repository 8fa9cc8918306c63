package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/money-manager/backend/internal/application/adapter"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserUseCase handles user authentication.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase.
func NewLoginUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService, tokenService adapter.TokenService) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute authenticates a user with email and password. Unknown emails and
// wrong passwords produce the same error so the endpoint does not leak which
// accounts exist.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*AuthOutput, error) {
	invalidCredentials := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)

	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, invalidCredentials
		}
		return nil, err
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}
