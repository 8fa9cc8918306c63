package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/domain/entity"
)

// User represents the database model for users. Settings are flattened into
// columns; they are few and queried together with the user row.
type User struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email                  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name                   string    `gorm:"type:varchar(255);not null"`
	PasswordHash           string    `gorm:"type:varchar(255);not null"`
	DefaultTransactionType string    `gorm:"type:varchar(20);not null;default:'expense'"`
	WeekStartDay           string    `gorm:"type:varchar(10);not null;default:'Monday'"`
	ConfirmBeforeTransfer  bool      `gorm:"not null;default:true"`
	CreatedAt              time.Time `gorm:"not null"`
	UpdatedAt              time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// ToEntity converts the database model to a domain entity.
func (m *User) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Settings: entity.UserSettings{
			DefaultTransactionType: entity.TransactionType(m.DefaultTransactionType),
			WeekStartDay:           entity.WeekStartDay(m.WeekStartDay),
			ConfirmBeforeTransfer:  m.ConfirmBeforeTransfer,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserFromEntity converts a domain entity to a database model.
func UserFromEntity(user *entity.User) *User {
	return &User{
		ID:                     user.ID,
		Email:                  user.Email,
		Name:                   user.Name,
		PasswordHash:           user.PasswordHash,
		DefaultTransactionType: string(user.Settings.DefaultTransactionType),
		WeekStartDay:           string(user.Settings.WeekStartDay),
		ConfirmBeforeTransfer:  user.Settings.ConfirmBeforeTransfer,
		CreatedAt:              user.CreatedAt,
		UpdatedAt:              user.UpdatedAt,
	}
}
