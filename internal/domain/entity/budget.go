// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetMonthFormat is the layout of a budget month key, e.g. "2025-08".
const BudgetMonthFormat = "2006-01"

// Budget represents a monthly spending limit for a (category, division)
// pair. At most one budget exists per (user, month, category, division).
type Budget struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Month        string // year-month key in BudgetMonthFormat
	Category     Category
	Division     Division
	BudgetAmount decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, month string, category Category, division Division, budgetAmount decimal.Decimal, now time.Time) *Budget {
	return &Budget{
		ID:           uuid.New(),
		UserID:       userID,
		Month:        month,
		Category:     category,
		Division:     division,
		BudgetAmount: budgetAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// BudgetWithSpending pairs a budget with the actual spend for its month,
// computed from the expense transactions matching its category and division.
type BudgetWithSpending struct {
	Budget      *Budget
	SpentAmount decimal.Decimal
}
