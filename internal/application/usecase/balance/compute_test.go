package balance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/domain/entity"
)

func txn(txnType entity.TransactionType, amount int64, account, from, to string) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Type:        txnType,
		Amount:      decimal.NewFromInt(amount),
		Date:        time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
		Account:     account,
		FromAccount: from,
		ToAccount:   to,
	}
}

func assertBalance(t *testing.T, balances map[entity.AccountName]decimal.Decimal, account entity.AccountName, want int64) {
	t.Helper()
	got := balances[account]
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Errorf("balance[%s] = %s, want %d", account, got, want)
	}
}

func TestComputeBalances(t *testing.T) {
	t.Run("empty history yields zero for every account", func(t *testing.T) {
		balances, unknown := ComputeBalances(nil)

		if len(unknown) != 0 {
			t.Errorf("expected no unknown accounts, got %v", unknown)
		}

		if len(balances) != 3 {
			t.Fatalf("expected 3 accounts, got %d", len(balances))
		}
		for _, account := range entity.Accounts() {
			assertBalance(t, balances, account, 0)
		}
	})

	t.Run("income credits and expense debits", func(t *testing.T) {
		balances, _ := ComputeBalances([]*entity.Transaction{
			txn(entity.TransactionTypeIncome, 50000, "Bank", "", ""),
			txn(entity.TransactionTypeExpense, 1500, "Cash", "", ""),
		})

		assertBalance(t, balances, entity.AccountBank, 50000)
		assertBalance(t, balances, entity.AccountCash, -1500)
		assertBalance(t, balances, entity.AccountWallet, 0)
	})

	t.Run("transfer moves money between accounts", func(t *testing.T) {
		balances, _ := ComputeBalances([]*entity.Transaction{
			txn(entity.TransactionTypeIncome, 50000, "Bank", "", ""),
			txn(entity.TransactionTypeExpense, 1500, "Cash", "", ""),
			txn(entity.TransactionTypeTransfer, 5000, "", "Bank", "Cash"),
		})

		assertBalance(t, balances, entity.AccountBank, 45000)
		assertBalance(t, balances, entity.AccountCash, 3500)
		assertBalance(t, balances, entity.AccountWallet, 0)
	})

	t.Run("bank to bank transfer only debits bank", func(t *testing.T) {
		balances, _ := ComputeBalances([]*entity.Transaction{
			txn(entity.TransactionTypeIncome, 10000, "Bank", "", ""),
			txn(entity.TransactionTypeTransfer, 2500, "", "Bank", "Bank"),
		})

		assertBalance(t, balances, entity.AccountBank, 7500)
		assertBalance(t, balances, entity.AccountCash, 0)
		assertBalance(t, balances, entity.AccountWallet, 0)
	})

	t.Run("account names are matched case-insensitively", func(t *testing.T) {
		balances, unknown := ComputeBalances([]*entity.Transaction{
			txn(entity.TransactionTypeIncome, 1000, "bank", "", ""),
			txn(entity.TransactionTypeTransfer, 200, "", "BANK", "wallet"),
		})

		if len(unknown) != 0 {
			t.Errorf("casing variants must not count as unknown, got %v", unknown)
		}

		assertBalance(t, balances, entity.AccountBank, 800)
		assertBalance(t, balances, entity.AccountWallet, 200)
	})

	t.Run("unknown account legs are skipped one-sidedly", func(t *testing.T) {
		balances, unknown := ComputeBalances([]*entity.Transaction{
			txn(entity.TransactionTypeIncome, 1000, "Bank", "", ""),
			txn(entity.TransactionTypeExpense, 300, "Crypto", "", ""),
			txn(entity.TransactionTypeTransfer, 100, "", "Bank", "Crypto"),
			txn(entity.TransactionTypeTransfer, 50, "", "Crypto", "Cash"),
		})

		assertBalance(t, balances, entity.AccountBank, 900)
		assertBalance(t, balances, entity.AccountCash, 50)
		assertBalance(t, balances, entity.AccountWallet, 0)
		if _, ok := balances["Crypto"]; ok {
			t.Error("unknown account must not appear in balances")
		}
		if len(unknown) != 1 || unknown[0] != "Crypto" {
			t.Errorf("unknown accounts = %v, want [Crypto]", unknown)
		}
	})

	t.Run("each unknown name is reported once", func(t *testing.T) {
		_, unknown := ComputeBalances([]*entity.Transaction{
			txn(entity.TransactionTypeExpense, 300, "Crypto", "", ""),
			txn(entity.TransactionTypeExpense, 200, "Crypto", "", ""),
			txn(entity.TransactionTypeTransfer, 100, "", "Savings", "Crypto"),
		})

		want := []string{"Crypto", "Savings"}
		if len(unknown) != len(want) {
			t.Fatalf("unknown accounts = %v, want %v", unknown, want)
		}
		for i, name := range want {
			if unknown[i] != name {
				t.Errorf("unknown[%d] = %s, want %s", i, unknown[i], name)
			}
		}
	})
}

type stubTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *stubTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *stubTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (r *stubTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return r.transactions, nil
}

func (r *stubTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *stubTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestGetBalancesUseCase_Execute(t *testing.T) {
	repo := &stubTransactionRepo{transactions: []*entity.Transaction{
		txn(entity.TransactionTypeIncome, 50000, "Bank", "", ""),
		txn(entity.TransactionTypeExpense, 1500, "Cash", "", ""),
		txn(entity.TransactionTypeTransfer, 5000, "", "Bank", "Cash"),
	}}
	useCase := NewGetBalancesUseCase(repo)

	output, err := useCase.Execute(context.Background(), GetBalancesInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(output.Balances) != 3 {
		t.Fatalf("expected 3 balances, got %d", len(output.Balances))
	}
	wantOrder := []entity.AccountName{entity.AccountCash, entity.AccountBank, entity.AccountWallet}
	wantAmounts := []int64{3500, 45000, 0}
	for i, accountBalance := range output.Balances {
		if accountBalance.Account != wantOrder[i] {
			t.Errorf("balances[%d].Account = %s, want %s", i, accountBalance.Account, wantOrder[i])
		}
		if !accountBalance.Balance.Equal(decimal.NewFromInt(wantAmounts[i])) {
			t.Errorf("balances[%d].Balance = %s, want %d", i, accountBalance.Balance, wantAmounts[i])
		}
	}
	if !output.Total.Equal(decimal.NewFromInt(48500)) {
		t.Errorf("Total = %s, want 48500", output.Total)
	}
}
