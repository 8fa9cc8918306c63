// Package auth implements the authentication use cases.
package auth

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
}

// AuthOutput represents a successful authentication result.
type AuthOutput struct {
	UserID       uuid.UUID
	Email        string
	Name         string
	AccessToken  string
	RefreshToken string
}

// RegisterUserUseCase handles new user registration.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase.
func NewRegisterUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService, tokenService adapter.TokenService) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute registers a new user and signs them in.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailPattern.MatchString(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			err,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"an account with this email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(email, strings.TrimSpace(input.Name), passwordHash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
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
