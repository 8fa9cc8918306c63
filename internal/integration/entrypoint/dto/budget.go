package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for creating a budget.
type CreateBudgetRequest struct {
	Month        string          `json:"month" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	Division     string          `json:"division"`
	BudgetAmount decimal.Decimal `json:"budgetAmount" binding:"required"`
}

// UpdateBudgetRequest represents the request body for amending a budget.
type UpdateBudgetRequest struct {
	BudgetAmount decimal.Decimal `json:"budgetAmount" binding:"required"`
}

// BudgetResponse represents a budget in API responses. SpentAmount and
// RemainingAmount are present on listings, where actual spend is computed.
type BudgetResponse struct {
	ID              string           `json:"id"`
	Month           string           `json:"month"`
	Category        string           `json:"category"`
	Division        string           `json:"division"`
	BudgetAmount    decimal.Decimal  `json:"budgetAmount"`
	SpentAmount     *decimal.Decimal `json:"spentAmount,omitempty"`
	RemainingAmount *decimal.Decimal `json:"remainingAmount,omitempty"`
	CreatedAt       string           `json:"createdAt"`
	UpdatedAt       string           `json:"updatedAt"`
}

// NewBudgetResponse maps a budget entity to its response shape.
func NewBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:           budget.ID.String(),
		Month:        budget.Month,
		Category:     string(budget.Category),
		Division:     string(budget.Division),
		BudgetAmount: budget.BudgetAmount,
		CreatedAt:    budget.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    budget.UpdatedAt.Format(time.RFC3339),
	}
}

// NewBudgetWithSpendingResponse maps a budget and its computed spend.
func NewBudgetWithSpendingResponse(budget *entity.BudgetWithSpending) BudgetResponse {
	response := NewBudgetResponse(budget.Budget)
	spent := budget.SpentAmount
	remaining := budget.Budget.BudgetAmount.Sub(spent)
	response.SpentAmount = &spent
	response.RemainingAmount = &remaining
	return response
}
