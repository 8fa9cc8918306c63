package budget

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/application/usecase/analytics"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// ListBudgetsInput represents the input for listing a month's budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Month  string
}

// ListBudgetsOutput pairs each budget with the month's actual spend.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithSpending
}

// ListBudgetsUseCase handles listing budgets with their budget-vs-actual
// comparison.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, transactionRepo adapter.TransactionRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute returns the user's budgets for a month, each with the spend
// computed from the month's expense transactions matching its category and
// division.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	monthStart, err := time.Parse(entity.BudgetMonthFormat, input.Month)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	budgets, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, input.Month)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ListBudgetsOutput{
		Budgets: make([]*entity.BudgetWithSpending, 0, len(budgets)),
	}
	for _, budget := range budgets {
		output.Budgets = append(output.Budgets, &entity.BudgetWithSpending{
			Budget:      budget,
			SpentAmount: analytics.MonthlyCategorySpend(transactions, monthStart, budget.Category, budget.Division),
		})
	}

	return output, nil
}
