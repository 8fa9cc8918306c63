package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/domain/valueobject"
)

// UpdateTransactionInput represents the input for amending a transaction.
// The draft replaces the stored record wholesale; a cross-type edit swaps
// out every type-specific field.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Draft         valueobject.TransactionDraft
}

// UpdateTransactionUseCase handles amending existing transactions.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute replaces a transaction's content with the validated draft. Edits
// are only accepted within the edit window measured from creation; the
// window is checked against a single clock reading and its boundary is
// inclusive. The amended record is re-validated as if newly submitted.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*Output, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"you are not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	now := uc.clock.Now()
	if !transaction.EditableAt(now) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEditWindowExpired,
			"transactions can only be edited within 12 hours of creation",
			domainerror.ErrEditWindowExpired,
		)
	}

	if err := input.Draft.Validate(); err != nil {
		return nil, err
	}

	draft := input.Draft.Normalized()
	transaction.Type = draft.Type
	transaction.Amount = draft.Amount
	transaction.Date = draft.Date
	transaction.Description = draft.Description
	transaction.Category = draft.Category
	transaction.Division = draft.Division
	transaction.Account = draft.Account
	transaction.FromAccount = draft.FromAccount
	transaction.ToAccount = draft.ToAccount
	transaction.UpdatedAt = now

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	return toOutput(transaction), nil
}
