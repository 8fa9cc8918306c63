package entity

import (
	"testing"
	"time"
)

func TestNormalizeAccount(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  AccountName
		ok    bool
	}{
		{"canonical form", "Cash", AccountCash, true},
		{"lower case", "bank", AccountBank, true},
		{"upper case", "WALLET", AccountWallet, true},
		{"mixed case", "cAsH", AccountCash, true},
		{"unknown account", "Crypto", "", false},
		{"empty string", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeAccount(tc.input)
			if ok != tc.ok || got != tc.want {
				t.Errorf("NormalizeAccount(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestAccountsOrder(t *testing.T) {
	// Display order: Cash, Bank, Wallet.
	accounts := Accounts()
	if len(accounts) != 3 {
		t.Fatalf("expected 3 registry accounts, got %d", len(accounts))
	}
	if accounts[0] != AccountCash || accounts[1] != AccountBank || accounts[2] != AccountWallet {
		t.Errorf("unexpected registry order: %v", accounts)
	}
}

func TestTransactionEditableAt(t *testing.T) {
	created := time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)
	txn := &Transaction{CreatedAt: created}

	t.Run("editable at exactly the window boundary", func(t *testing.T) {
		if !txn.EditableAt(created.Add(EditWindow)) {
			t.Error("expected transaction to be editable at createdAt + 12h")
		}
	})

	t.Run("not editable one second past the boundary", func(t *testing.T) {
		if txn.EditableAt(created.Add(EditWindow + time.Second)) {
			t.Error("expected transaction to not be editable past the window")
		}
	})
}
