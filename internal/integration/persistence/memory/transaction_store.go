// Package memory provides in-memory repository implementations used in demo
// mode, where the server runs without a database. Stores return copies so
// callers can never mutate shared state behind the lock.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// TransactionStore implements adapter.TransactionRepository in memory.
type TransactionStore struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]*entity.Transaction
}

// NewTransactionStore creates an empty TransactionStore.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{
		transactions: make(map[uuid.UUID]*entity.Transaction),
	}
}

// Create persists a new transaction.
func (s *TransactionStore) Create(ctx context.Context, transaction *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *transaction
	s.transactions[transaction.ID] = &copied
	return nil
}

// FindByID retrieves a transaction by its ID.
func (s *TransactionStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	transaction, ok := s.transactions[id]
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	copied := *transaction
	return &copied, nil
}

// FindByUser retrieves all transactions for a user.
func (s *TransactionStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Transaction, 0)
	for _, transaction := range s.transactions {
		if transaction.UserID == userID {
			copied := *transaction
			out = append(out, &copied)
		}
	}
	return out, nil
}

// Update persists changes to an existing transaction.
func (s *TransactionStore) Update(ctx context.Context, transaction *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[transaction.ID]; !ok {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	copied := *transaction
	s.transactions[transaction.ID] = &copied
	return nil
}

// Delete removes a transaction by its ID.
func (s *TransactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	delete(s.transactions, id)
	return nil
}
