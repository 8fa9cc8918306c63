package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for amending a budget's amount.
// The (month, category, division) key is immutable; to move a budget the
// caller deletes and recreates it.
type UpdateBudgetInput struct {
	BudgetID     uuid.UUID
	UserID       uuid.UUID
	BudgetAmount decimal.Decimal
}

// UpdateBudgetUseCase handles amending existing budgets.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute replaces the budget amount.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*entity.Budget, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"you are not authorized to modify this budget",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	if !input.BudgetAmount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	budget.BudgetAmount = input.BudgetAmount
	budget.UpdatedAt = uc.clock.Now()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}
