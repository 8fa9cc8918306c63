// Package transaction implements the transaction store use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/domain/entity"
)

// Output represents a transaction as returned to callers.
type Output struct {
	ID          uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Category    entity.Category
	Division    entity.Division
	Account     string
	FromAccount string
	ToAccount   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// toOutput maps a transaction entity to its output representation.
func toOutput(transaction *entity.Transaction) *Output {
	return &Output{
		ID:          transaction.ID,
		Type:        transaction.Type,
		Amount:      transaction.Amount,
		Date:        transaction.Date,
		Description: transaction.Description,
		Category:    transaction.Category,
		Division:    transaction.Division,
		Account:     transaction.Account,
		FromAccount: transaction.FromAccount,
		ToAccount:   transaction.ToAccount,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
