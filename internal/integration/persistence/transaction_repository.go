// Package persistence implements the repository adapters backed by GORM.
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

// TransactionRepository implements adapter.TransactionRepository using GORM.
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create persists a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction)).Error
}

// FindByID retrieves a transaction by its ID.
func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transaction model.Transaction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, err
	}
	return transaction.ToEntity(), nil
}

// FindByUser retrieves all transactions for a user, newest date first.
func (r *TransactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.Transaction, 0, len(transactions))
	for i := range transactions {
		entities = append(entities, transactions[i].ToEntity())
	}
	return entities, nil
}

// Update persists changes to an existing transaction.
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(model.TransactionFromEntity(transaction))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return nil
}

// Delete soft-deletes a transaction by its ID.
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return nil
}
