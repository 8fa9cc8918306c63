package balance

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
)

// GetBalancesInput represents the input for retrieving account balances.
type GetBalancesInput struct {
	UserID uuid.UUID
}

// AccountBalance is one account's derived balance.
type AccountBalance struct {
	Account entity.AccountName
	Balance decimal.Decimal
}

// GetBalancesOutput represents the derived balances in registry order.
type GetBalancesOutput struct {
	Balances []AccountBalance
	Total    decimal.Decimal
}

// GetBalancesUseCase handles deriving account balances for a user.
type GetBalancesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetBalancesUseCase creates a new GetBalancesUseCase.
func NewGetBalancesUseCase(transactionRepo adapter.TransactionRepository) *GetBalancesUseCase {
	return &GetBalancesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute folds the user's full transaction history into per-account balances.
// Account names outside the registry never break the fold; each one is logged
// once so the anomaly stays visible.
func (uc *GetBalancesUseCase) Execute(ctx context.Context, input GetBalancesInput) (*GetBalancesOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	balances, unknown := ComputeBalances(transactions)
	for _, name := range unknown {
		slog.Warn("transaction references an unknown account", "account", name, "user_id", input.UserID)
	}

	output := &GetBalancesOutput{
		Balances: make([]AccountBalance, 0, len(entity.Accounts())),
		Total:    decimal.Zero,
	}
	for _, account := range entity.Accounts() {
		output.Balances = append(output.Balances, AccountBalance{
			Account: account,
			Balance: balances[account],
		})
		output.Total = output.Total.Add(balances[account])
	}

	return output, nil
}
