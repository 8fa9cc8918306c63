package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// BudgetStore implements adapter.BudgetRepository in memory.
type BudgetStore struct {
	mu      sync.RWMutex
	budgets map[uuid.UUID]*entity.Budget
}

// NewBudgetStore creates an empty BudgetStore.
func NewBudgetStore() *BudgetStore {
	return &BudgetStore{
		budgets: make(map[uuid.UUID]*entity.Budget),
	}
}

// Create persists a new budget.
func (s *BudgetStore) Create(ctx context.Context, budget *entity.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *budget
	s.budgets[budget.ID] = &copied
	return nil
}

// FindByID retrieves a budget by its ID.
func (s *BudgetStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	budget, ok := s.budgets[id]
	if !ok {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	copied := *budget
	return &copied, nil
}

// FindByUserAndMonth retrieves all budgets for a user in a given month key,
// ordered by category then division for stable listings.
func (s *BudgetStore) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Budget, 0)
	for _, budget := range s.budgets {
		if budget.UserID == userID && budget.Month == month {
			copied := *budget
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Division < out[j].Division
	})
	return out, nil
}

// ExistsByKey reports whether a budget already exists for the
// (user, month, category, division) combination.
func (s *BudgetStore) ExistsByKey(ctx context.Context, userID uuid.UUID, month string, category entity.Category, division entity.Division) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, budget := range s.budgets {
		if budget.UserID == userID && budget.Month == month && budget.Category == category && budget.Division == division {
			return true, nil
		}
	}
	return false, nil
}

// Update persists changes to an existing budget.
func (s *BudgetStore) Update(ctx context.Context, budget *entity.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[budget.ID]; !ok {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	copied := *budget
	s.budgets[budget.ID] = &copied
	return nil
}

// Delete removes a budget by its ID.
func (s *BudgetStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[id]; !ok {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	delete(s.budgets, id)
	return nil
}
