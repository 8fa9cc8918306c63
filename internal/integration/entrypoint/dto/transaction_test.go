package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/money-manager/backend/internal/domain/error"
)

func TestTransactionRequestToDraft(t *testing.T) {
	t.Run("parses RFC 3339 and calendar-day dates", func(t *testing.T) {
		for _, value := range []string{"2025-08-13T10:30:00Z", "2025-08-13"} {
			request := TransactionRequest{Type: "expense", Amount: decimal.NewFromInt(1500), Date: value, Account: "Cash"}
			draft, err := request.ToDraft()
			if err != nil {
				t.Fatalf("ToDraft(%q) failed: %v", value, err)
			}
			want := time.Date(2025, 8, 13, 0, 0, 0, 0, time.UTC)
			if draft.Date.Year() != want.Year() || draft.Date.Month() != want.Month() || draft.Date.Day() != want.Day() {
				t.Errorf("ToDraft(%q).Date = %v", value, draft.Date)
			}
		}
	})

	t.Run("a missing date maps to the zero time", func(t *testing.T) {
		request := TransactionRequest{Type: "expense", Amount: decimal.NewFromInt(1500), Account: "Cash"}
		draft, err := request.ToDraft()
		if err != nil {
			t.Fatalf("ToDraft failed: %v", err)
		}
		if !draft.Date.IsZero() {
			t.Errorf("Date = %v, want zero", draft.Date)
		}
	})

	t.Run("an unparsable date is its own error", func(t *testing.T) {
		request := TransactionRequest{Type: "expense", Amount: decimal.NewFromInt(1500), Date: "13/08/2025", Account: "Cash"}
		_, err := request.ToDraft()
		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidTransactionDate {
			t.Fatalf("expected %s, got %v", domainerror.ErrCodeInvalidTransactionDate, err)
		}
		if !errors.Is(err, domainerror.ErrInvalidTransactionDate) {
			t.Errorf("error must wrap ErrInvalidTransactionDate, got %v", err)
		}
	})

	t.Run("legacy account aliases resolve with canonical fields winning", func(t *testing.T) {
		request := TransactionRequest{
			Type:          "transfer",
			Amount:        decimal.NewFromInt(500),
			Date:          "2025-08-13",
			FromAccountID: "Bank",
			ToAccount:     "Wallet",
			ToAccountID:   "Cash",
		}
		draft, err := request.ToDraft()
		if err != nil {
			t.Fatalf("ToDraft failed: %v", err)
		}
		if draft.FromAccount != "Bank" {
			t.Errorf("FromAccount = %q, want Bank", draft.FromAccount)
		}
		if draft.ToAccount != "Wallet" {
			t.Errorf("ToAccount = %q, want Wallet (canonical field wins)", draft.ToAccount)
		}
	})
}
