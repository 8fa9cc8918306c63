// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// IsValidTransactionType validates the transaction type.
func IsValidTransactionType(transactionType TransactionType) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// Category is a spending category tag for income and expense records.
// Transfers always carry CategoryTransfer.
type Category string

const (
	CategoryFuel     Category = "Fuel"
	CategoryFood     Category = "Food"
	CategoryMovie    Category = "Movie"
	CategoryLoan     Category = "Loan"
	CategoryMedical  Category = "Medical"
	CategoryOthers   Category = "Others"
	CategoryTransfer Category = "Transfer"
)

// SpendingCategories returns the categories selectable for income and
// expense records, in display order.
func SpendingCategories() []Category {
	return []Category{CategoryFuel, CategoryFood, CategoryMovie, CategoryLoan, CategoryMedical, CategoryOthers}
}

// Division is a cost-center tag orthogonal to account and category.
type Division string

const (
	DivisionOffice   Division = "Office"
	DivisionPersonal Division = "Personal"
)

// EditWindow is the period after creation during which a transaction may be
// amended. Deletes are not gated by it.
const EditWindow = 12 * time.Hour

// Transaction represents a financial transaction in the Money Manager system.
// Account is set for income/expense records; FromAccount and ToAccount are
// set for transfers. Account name fields may hold non-registry values from
// legacy data; derived views normalize and tolerate them.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Date        time.Time // user-asserted, may be back- or future-dated
	Description string
	Category    Category
	Division    Division
	Account     string
	FromAccount string
	ToAccount   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity. The caller supplies now so
// that CreatedAt, which gates the edit window, comes from a single clock.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	date time.Time,
	description string,
	category Category,
	division Division,
	account string,
	fromAccount string,
	toAccount string,
	now time.Time,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Date:        date,
		Description: description,
		Category:    category,
		Division:    division,
		Account:     account,
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EditableAt reports whether the transaction may still be amended at the
// given reference time. The boundary is inclusive: an edit at exactly
// CreatedAt + EditWindow is permitted.
func (t *Transaction) EditableAt(now time.Time) bool {
	return now.Sub(t.CreatedAt) <= EditWindow
}

// IsExternalBankTransfer reports whether the transaction is a Bank-to-Bank
// transfer, which models money leaving the tracked accounts entirely and is
// debited from Bank without crediting any account.
func (t *Transaction) IsExternalBankTransfer() bool {
	if t.Type != TransactionTypeTransfer {
		return false
	}
	from, okFrom := NormalizeAccount(t.FromAccount)
	to, okTo := NormalizeAccount(t.ToAccount)
	return okFrom && okTo && from == AccountBank && to == AccountBank
}
