// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/domain/entity"
)

// BudgetRepository defines the persistence contract for monthly budgets.
// Implementations must return domainerror.ErrBudgetNotFound when a lookup
// misses.
type BudgetRepository interface {
	// Create persists a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserAndMonth retrieves all budgets for a user in a given month key.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error)

	// ExistsByKey reports whether a budget already exists for the
	// (user, month, category, division) combination.
	ExistsByKey(ctx context.Context, userID uuid.UUID, month string, category entity.Category, division entity.Division) (bool, error)

	// Update persists changes to an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
