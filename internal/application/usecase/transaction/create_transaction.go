package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	"github.com/money-manager/backend/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for creating a transaction.
type CreateTransactionInput struct {
	UserID uuid.UUID
	Draft  valueobject.TransactionDraft
}

// CreateTransactionUseCase handles the creation of new transactions.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute validates the draft, applies type-dependent defaults, and persists
// the resulting transaction. The creation timestamp starts the edit window.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*Output, error) {
	if err := input.Draft.Validate(); err != nil {
		return nil, err
	}

	draft := input.Draft.Normalized()
	transaction := entity.NewTransaction(
		input.UserID,
		draft.Type,
		draft.Amount,
		draft.Date,
		draft.Description,
		draft.Category,
		draft.Division,
		draft.Account,
		draft.FromAccount,
		draft.ToAccount,
		uc.clock.Now(),
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	return toOutput(transaction), nil
}
