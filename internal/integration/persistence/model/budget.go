package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/money-manager/backend/internal/domain/entity"
)

// Budget represents the database model for monthly budgets. The composite
// unique index enforces one budget per (user, month, category, division),
// scoped to live rows so a soft-deleted budget frees its key for re-creation.
type Budget struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_key,where:deleted_at IS NULL"`
	Month        string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_key"`
	Category     string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budget_key"`
	Division     string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budget_key"`
	BudgetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (Budget) TableName() string {
	return "budgets"
}

// ToEntity converts the database model to a domain entity.
func (m *Budget) ToEntity() *entity.Budget {
	budget := &entity.Budget{
		ID:           m.ID,
		UserID:       m.UserID,
		Month:        m.Month,
		Category:     entity.Category(m.Category),
		Division:     entity.Division(m.Division),
		BudgetAmount: m.BudgetAmount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		budget.DeletedAt = &deletedAt
	}
	return budget
}

// BudgetFromEntity converts a domain entity to a database model.
func BudgetFromEntity(budget *entity.Budget) *Budget {
	return &Budget{
		ID:           budget.ID,
		UserID:       budget.UserID,
		Month:        budget.Month,
		Category:     string(budget.Category),
		Division:     string(budget.Division),
		BudgetAmount: budget.BudgetAmount,
		CreatedAt:    budget.CreatedAt,
		UpdatedAt:    budget.UpdatedAt,
	}
}
