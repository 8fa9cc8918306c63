// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeekStartDay represents the user's preferred first day of the week,
// used when computing weekly analytics windows.
type WeekStartDay string

const (
	WeekStartSunday WeekStartDay = "Sunday"
	WeekStartMonday WeekStartDay = "Monday"
)

// UserSettings holds per-user preferences.
type UserSettings struct {
	DefaultTransactionType TransactionType
	WeekStartDay           WeekStartDay
	ConfirmBeforeTransfer  bool
}

// DefaultUserSettings returns the settings applied to a new user.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		DefaultTransactionType: TransactionTypeExpense,
		WeekStartDay:           WeekStartMonday,
		ConfirmBeforeTransfer:  true,
	}
}

// User represents a user in the Money Manager system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Settings     UserSettings
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default settings.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Settings:     DefaultUserSettings(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
