package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionUseCase handles the deletion of transactions. Unlike
// updates, deletion is allowed at any age.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute removes a transaction owned by the user. Derived balances and
// analytics reflect the removal immediately since they fold over whatever
// history remains.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return err
	}

	if transaction.UserID != input.UserID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"you are not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	return uc.transactionRepo.Delete(ctx, input.TransactionID)
}
