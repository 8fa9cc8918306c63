package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for replacing a user's settings.
type UpdateSettingsInput struct {
	UserID   uuid.UUID
	Settings entity.UserSettings
}

// UpdateSettingsUseCase handles updating user preferences.
type UpdateSettingsUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase.
func NewUpdateSettingsUseCase(userRepo adapter.UserRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		userRepo: userRepo,
	}
}

// Execute validates and persists the settings. The week start day drives the
// weekly analytics window, so only Sunday and Monday are accepted.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*entity.UserSettings, error) {
	settings := input.Settings
	if settings.WeekStartDay != entity.WeekStartSunday && settings.WeekStartDay != entity.WeekStartMonday {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidSettings,
			"week start day must be Sunday or Monday",
			domainerror.ErrInvalidWeekStartDay,
		)
	}
	if settings.DefaultTransactionType == "" {
		settings.DefaultTransactionType = entity.TransactionTypeExpense
	}
	if !entity.IsValidTransactionType(settings.DefaultTransactionType) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidSettings,
			"default transaction type must be 'income', 'expense' or 'transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if err := uc.userRepo.UpdateSettings(ctx, input.UserID, settings); err != nil {
		return nil, err
	}

	return &settings, nil
}
