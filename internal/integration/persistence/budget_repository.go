package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
	"github.com/money-manager/backend/internal/integration/persistence/model"
)

// BudgetRepository implements adapter.BudgetRepository using GORM.
type BudgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new BudgetRepository.
func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Create persists a new budget.
func (r *BudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	return r.db.WithContext(ctx).Create(model.BudgetFromEntity(budget)).Error
}

// FindByID retrieves a budget by its ID.
func (r *BudgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budget model.Budget
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, err
	}
	return budget.ToEntity(), nil
}

// FindByUserAndMonth retrieves all budgets for a user in a given month key.
func (r *BudgetRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error) {
	var budgets []model.Budget
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("category ASC, division ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.Budget, 0, len(budgets))
	for i := range budgets {
		entities = append(entities, budgets[i].ToEntity())
	}
	return entities, nil
}

// ExistsByKey reports whether a budget already exists for the
// (user, month, category, division) combination.
func (r *BudgetRepository) ExistsByKey(ctx context.Context, userID uuid.UUID, month string, category entity.Category, division entity.Division) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Budget{}).
		Where("user_id = ? AND month = ? AND category = ? AND division = ?", userID, month, string(category), string(division)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists changes to an existing budget.
func (r *BudgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	result := r.db.WithContext(ctx).
		Model(&model.Budget{}).
		Where("id = ?", budget.ID).
		Updates(map[string]interface{}{
			"budget_amount": budget.BudgetAmount,
			"updated_at":    budget.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	return nil
}

// Delete soft-deletes a budget by its ID.
func (r *BudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Budget{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	return nil
}
