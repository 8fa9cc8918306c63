// Package budget implements the monthly budget use cases.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for creating a budget.
type CreateBudgetInput struct {
	UserID       uuid.UUID
	Month        string
	Category     entity.Category
	Division     entity.Division
	BudgetAmount decimal.Decimal
}

// CreateBudgetUseCase handles the creation of new budgets.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute validates and persists a budget. At most one budget may exist per
// (month, category, division) for a user.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*entity.Budget, error) {
	division := input.Division
	if division == "" {
		division = entity.DivisionPersonal
	}

	if err := validateBudgetFields(input.Month, input.BudgetAmount); err != nil {
		return nil, err
	}

	exists, err := uc.budgetRepo.ExistsByKey(ctx, input.UserID, input.Month, input.Category, division)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeDuplicateBudget,
			"a budget for this month, category and division already exists",
			domainerror.ErrDuplicateBudget,
		)
	}

	budget := entity.NewBudget(input.UserID, input.Month, input.Category, division, input.BudgetAmount, uc.clock.Now())
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}

// validateBudgetFields checks the month key layout and amount positivity
// shared by create and update.
func validateBudgetFields(month string, amount decimal.Decimal) error {
	if _, err := time.Parse(entity.BudgetMonthFormat, month); err != nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	return nil
}
