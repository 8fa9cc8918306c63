// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/domain/entity"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateSettings persists new settings for a user.
	UpdateSettings(ctx context.Context, userID uuid.UUID, settings entity.UserSettings) error
}
