// Package balance derives account balances from the transaction history.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/domain/entity"
)

// ComputeBalances folds the full transaction history into a balance per
// registry account. Balances are never stored; this fold is the single
// source of truth and starts every account at zero.
//
// Income credits its account, expense debits its account. A transfer debits
// the source and credits the destination, except Bank-to-Bank which models
// money leaving the tracked accounts and only debits Bank. Legs that name an
// account outside the registry are skipped individually, so a transfer into
// an unknown account still debits its recognized source. The skipped names
// come back deduplicated, in order of first appearance, so callers can log
// the anomaly.
func ComputeBalances(transactions []*entity.Transaction) (map[entity.AccountName]decimal.Decimal, []string) {
	balances := make(map[entity.AccountName]decimal.Decimal, len(entity.Accounts()))
	for _, account := range entity.Accounts() {
		balances[account] = decimal.Zero
	}

	var unknown []string
	seen := make(map[string]bool)
	skip := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		unknown = append(unknown, name)
	}

	for _, transaction := range transactions {
		switch transaction.Type {
		case entity.TransactionTypeIncome:
			if account, ok := entity.NormalizeAccount(transaction.Account); ok {
				balances[account] = balances[account].Add(transaction.Amount)
			} else {
				skip(transaction.Account)
			}
		case entity.TransactionTypeExpense:
			if account, ok := entity.NormalizeAccount(transaction.Account); ok {
				balances[account] = balances[account].Sub(transaction.Amount)
			} else {
				skip(transaction.Account)
			}
		case entity.TransactionTypeTransfer:
			if from, ok := entity.NormalizeAccount(transaction.FromAccount); ok {
				balances[from] = balances[from].Sub(transaction.Amount)
			} else {
				skip(transaction.FromAccount)
			}
			if transaction.IsExternalBankTransfer() {
				// Destination is outside the system; nothing to credit.
				continue
			}
			if to, ok := entity.NormalizeAccount(transaction.ToAccount); ok {
				balances[to] = balances[to].Add(transaction.Amount)
			} else {
				skip(transaction.ToAccount)
			}
		}
	}

	return balances, unknown
}
