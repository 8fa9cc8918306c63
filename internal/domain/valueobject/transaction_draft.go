// Package valueobject defines immutable value types used across the domain.
package valueobject

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// TransactionDraft is an unvalidated transaction as submitted by a caller.
// Account name fields are raw strings; they are normalized against the
// account registry during validation and by the balance engine.
type TransactionDraft struct {
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Category    entity.Category
	Division    entity.Division
	Account     string
	FromAccount string
	ToAccount   string
}

// Validate applies the transaction rule checks in order, stopping at the
// first failure. It is pure and knows nothing about persistence; the store
// runs it again on every mutation regardless of what the caller claims to
// have checked.
func (d TransactionDraft) Validate() error {
	if !entity.IsValidTransactionType(d.Type) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income', 'expense' or 'transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if d.Amount.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionField,
			"amount is required",
			domainerror.ErrMissingTransactionField,
		)
	}
	if d.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionField,
			"date is required",
			domainerror.ErrMissingTransactionField,
		)
	}

	if d.Amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if d.Type == entity.TransactionTypeTransfer {
		if strings.EqualFold(d.FromAccount, d.ToAccount) && !d.isBankToBank() {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeSameAccountTransfer,
				"from and to accounts cannot be the same (except for bank transfer)",
				domainerror.ErrSameAccountTransfer,
			)
		}
		if d.isBankToBank() && strings.TrimSpace(d.Description) == "" {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransferDescription,
				"description is required for bank-to-bank transfers",
				domainerror.ErrMissingTransferDescription,
			)
		}
	}

	return nil
}

// Normalized returns a copy of the draft with type-dependent defaults and
// canonical field values applied: transfers are forced to the Transfer
// category and Personal division and have no single account; income and
// expense drafts default to Others/Personal, drop transfer accounts, and
// have recognized account names rewritten to their canonical casing.
// Cross-type edits therefore replace all type-specific fields wholesale.
func (d TransactionDraft) Normalized() TransactionDraft {
	out := d
	if d.Type == entity.TransactionTypeTransfer {
		out.Category = entity.CategoryTransfer
		out.Division = entity.DivisionPersonal
		out.Account = ""
		if from, ok := entity.NormalizeAccount(d.FromAccount); ok {
			out.FromAccount = string(from)
		}
		if to, ok := entity.NormalizeAccount(d.ToAccount); ok {
			out.ToAccount = string(to)
		}
		return out
	}

	if out.Category == "" || out.Category == entity.CategoryTransfer {
		out.Category = entity.CategoryOthers
	}
	if out.Division == "" {
		out.Division = entity.DivisionPersonal
	}
	if account, ok := entity.NormalizeAccount(d.Account); ok {
		out.Account = string(account)
	}
	out.FromAccount = ""
	out.ToAccount = ""
	return out
}

// isBankToBank reports whether both transfer sides resolve to the Bank
// account, the one sanctioned same-account case (an external transfer).
func (d TransactionDraft) isBankToBank() bool {
	from, okFrom := entity.NormalizeAccount(d.FromAccount)
	to, okTo := entity.NormalizeAccount(d.ToAccount)
	return okFrom && okTo && from == entity.AccountBank && to == entity.AccountBank
}
