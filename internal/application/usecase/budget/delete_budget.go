package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for deleting a budget.
type DeleteBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// DeleteBudgetUseCase handles the deletion of budgets. Budgets live
// independently of transactions; deleting one never touches spend history.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute removes a budget owned by the user.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return err
	}

	if budget.UserID != input.UserID {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"you are not authorized to modify this budget",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	return uc.budgetRepo.Delete(ctx, input.BudgetID)
}
