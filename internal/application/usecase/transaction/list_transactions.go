package transaction

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID uuid.UUID
}

// ListTransactionsOutput represents the user's transactions, newest date
// first.
type ListTransactionsOutput struct {
	Transactions []*Output
}

// ListTransactionsUseCase handles listing a user's transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns all transactions for the user ordered by date descending,
// ties broken by creation time descending.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})

	output := &ListTransactionsOutput{
		Transactions: make([]*Output, 0, len(transactions)),
	}
	for _, transaction := range transactions {
		output.Transactions = append(output.Transactions, toOutput(transaction))
	}

	return output, nil
}
