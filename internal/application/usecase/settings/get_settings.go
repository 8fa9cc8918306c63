// Package settings implements the user preference use cases.
package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
)

// GetSettingsInput represents the input for reading a user's settings.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsUseCase handles reading user preferences.
type GetSettingsUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase.
func NewGetSettingsUseCase(userRepo adapter.UserRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		userRepo: userRepo,
	}
}

// Execute returns the user's settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*entity.UserSettings, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	settings := user.Settings
	return &settings, nil
}
