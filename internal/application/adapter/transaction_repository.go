// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/domain/entity"
)

// TransactionRepository defines the persistence contract for transactions.
// Implementations must return domainerror.ErrTransactionNotFound when a
// lookup misses.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a user, newest date first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
