// Package model defines the database models for persistence.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/money-manager/backend/internal/domain/entity"
)

// Transaction represents the database model for transactions.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"not null;index"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(50);not null"`
	Division    string          `gorm:"type:varchar(50);not null"`
	Account     string          `gorm:"type:varchar(50)"`
	FromAccount string          `gorm:"type:varchar(50)"`
	ToAccount   string          `gorm:"type:varchar(50)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (Transaction) TableName() string {
	return "transactions"
}

// ToEntity converts the database model to a domain entity.
func (m *Transaction) ToEntity() *entity.Transaction {
	transaction := &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		Category:    entity.Category(m.Category),
		Division:    entity.Division(m.Division),
		Account:     m.Account,
		FromAccount: m.FromAccount,
		ToAccount:   m.ToAccount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		transaction.DeletedAt = &deletedAt
	}
	return transaction
}

// TransactionFromEntity converts a domain entity to a database model.
func TransactionFromEntity(transaction *entity.Transaction) *Transaction {
	return &Transaction{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Date:        transaction.Date,
		Description: transaction.Description,
		Category:    string(transaction.Category),
		Division:    string(transaction.Division),
		Account:     transaction.Account,
		FromAccount: transaction.FromAccount,
		ToAccount:   transaction.ToAccount,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
