package analytics

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
)

// GetPeriodStatsInput represents the input for period analytics.
type GetPeriodStatsInput struct {
	UserID uuid.UUID
	Period PeriodKind
}

// GetPeriodStatsUseCase handles period analytics for a user.
type GetPeriodStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
	clock           adapter.Clock
}

// NewGetPeriodStatsUseCase creates a new GetPeriodStatsUseCase.
func NewGetPeriodStatsUseCase(transactionRepo adapter.TransactionRepository, userRepo adapter.UserRepository, clock adapter.Clock) *GetPeriodStatsUseCase {
	return &GetPeriodStatsUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		clock:           clock,
	}
}

// Execute aggregates the window of the requested kind containing the current
// time. The weekly window start day comes from the user's settings.
func (uc *GetPeriodStatsUseCase) Execute(ctx context.Context, input GetPeriodStatsInput) (*PeriodStats, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	weekStart := entity.WeekStartMonday
	if user, err := uc.userRepo.FindByID(ctx, input.UserID); err == nil && user.Settings.WeekStartDay != "" {
		weekStart = user.Settings.WeekStartDay
	}

	return AggregatePeriod(transactions, input.Period, uc.clock.Now(), weekStart), nil
}
