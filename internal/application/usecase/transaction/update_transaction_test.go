package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/domain/valueobject"
)

func seedTransaction(t *testing.T, repo *fakeTransactionRepo, userID uuid.UUID, createdAt time.Time) *entity.Transaction {
	t.Helper()
	draft := expenseDraft()
	transaction := entity.NewTransaction(
		userID,
		draft.Type,
		draft.Amount,
		draft.Date,
		draft.Description,
		draft.Category,
		draft.Division,
		draft.Account,
		"",
		"",
		createdAt,
	)
	if err := repo.Create(context.Background(), transaction); err != nil {
		t.Fatalf("seeding transaction: %v", err)
	}
	return transaction
}

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("amends within the edit window", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(t, repo, userID, testNow)
		clock := &fixedClock{now: testNow.Add(3 * time.Hour)}
		useCase := NewUpdateTransactionUseCase(repo, clock)

		draft := expenseDraft()
		draft.Amount = decimal.NewFromInt(1800)
		output, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: seeded.ID,
			UserID:        userID,
			Draft:         draft,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if !output.Amount.Equal(decimal.NewFromInt(1800)) {
			t.Errorf("Amount = %s, want 1800", output.Amount)
		}
		if !output.CreatedAt.Equal(testNow) {
			t.Errorf("CreatedAt must not change on update")
		}
		if !output.UpdatedAt.Equal(clock.now) {
			t.Errorf("UpdatedAt = %v, want %v", output.UpdatedAt, clock.now)
		}
	})

	t.Run("accepts an edit exactly at the window boundary", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(t, repo, userID, testNow)
		clock := &fixedClock{now: testNow.Add(entity.EditWindow)}
		useCase := NewUpdateTransactionUseCase(repo, clock)

		_, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: seeded.ID,
			UserID:        userID,
			Draft:         expenseDraft(),
		})
		if err != nil {
			t.Fatalf("edit at exactly 12h must be allowed, got %v", err)
		}
	})

	t.Run("rejects an edit after the window", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(t, repo, userID, testNow)
		clock := &fixedClock{now: testNow.Add(entity.EditWindow + time.Second)}
		useCase := NewUpdateTransactionUseCase(repo, clock)

		_, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: seeded.ID,
			UserID:        userID,
			Draft:         expenseDraft(),
		})
		if got := transactionErrorCode(t, err); got != domainerror.ErrCodeEditWindowExpired {
			t.Errorf("error code = %s, want %s", got, domainerror.ErrCodeEditWindowExpired)
		}
	})

	t.Run("rejects another user's transaction", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(t, repo, userID, testNow)
		useCase := NewUpdateTransactionUseCase(repo, &fixedClock{now: testNow})

		_, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: seeded.ID,
			UserID:        uuid.New(),
			Draft:         expenseDraft(),
		})
		if got := transactionErrorCode(t, err); got != domainerror.ErrCodeNotAuthorizedTransaction {
			t.Errorf("error code = %s, want %s", got, domainerror.ErrCodeNotAuthorizedTransaction)
		}
	})

	t.Run("cross-type edit replaces type-specific fields", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(t, repo, userID, testNow)
		useCase := NewUpdateTransactionUseCase(repo, &fixedClock{now: testNow.Add(time.Hour)})

		output, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: seeded.ID,
			UserID:        userID,
			Draft: valueobject.TransactionDraft{
				Type:        entity.TransactionTypeTransfer,
				Amount:      decimal.NewFromInt(5000),
				Date:        testNow,
				FromAccount: "Bank",
				ToAccount:   "Wallet",
			},
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Account != "" {
			t.Errorf("Account = %q, want empty after switching to transfer", output.Account)
		}
		if output.Category != entity.CategoryTransfer {
			t.Errorf("Category = %s, want Transfer", output.Category)
		}
		if output.FromAccount != "Bank" || output.ToAccount != "Wallet" {
			t.Errorf("accounts = %s/%s, want Bank/Wallet", output.FromAccount, output.ToAccount)
		}
	})

	t.Run("re-validates the amended record", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(t, repo, userID, testNow)
		useCase := NewUpdateTransactionUseCase(repo, &fixedClock{now: testNow.Add(time.Hour)})

		_, err := useCase.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: seeded.ID,
			UserID:        userID,
			Draft: valueobject.TransactionDraft{
				Type:        entity.TransactionTypeTransfer,
				Amount:      decimal.NewFromInt(5000),
				Date:        testNow,
				FromAccount: "Cash",
				ToAccount:   "Cash",
			},
		})
		if got := transactionErrorCode(t, err); got != domainerror.ErrCodeSameAccountTransfer {
			t.Errorf("error code = %s, want %s", got, domainerror.ErrCodeSameAccountTransfer)
		}
	})
}

func TestDeleteTransactionUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes regardless of age", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(t, repo, userID, testNow.Add(-48*time.Hour))
		useCase := NewDeleteTransactionUseCase(repo)

		if err := useCase.Execute(context.Background(), DeleteTransactionInput{
			TransactionID: seeded.ID,
			UserID:        userID,
		}); err != nil {
			t.Fatalf("delete of an old transaction must succeed, got %v", err)
		}
		if len(repo.byID) != 0 {
			t.Errorf("transaction still present after delete")
		}
	})

	t.Run("rejects another user's transaction", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(t, repo, userID, testNow)
		useCase := NewDeleteTransactionUseCase(repo)

		err := useCase.Execute(context.Background(), DeleteTransactionInput{
			TransactionID: seeded.ID,
			UserID:        uuid.New(),
		})
		if got := transactionErrorCode(t, err); got != domainerror.ErrCodeNotAuthorizedTransaction {
			t.Errorf("error code = %s, want %s", got, domainerror.ErrCodeNotAuthorizedTransaction)
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		useCase := NewDeleteTransactionUseCase(repo)

		err := useCase.Execute(context.Background(), DeleteTransactionInput{
			TransactionID: uuid.New(),
			UserID:        userID,
		})
		if got := transactionErrorCode(t, err); got != domainerror.ErrCodeTransactionNotFound {
			t.Errorf("error code = %s, want %s", got, domainerror.ErrCodeTransactionNotFound)
		}
	})
}
