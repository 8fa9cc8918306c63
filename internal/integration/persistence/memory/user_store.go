package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

// UserStore implements adapter.UserRepository in memory.
type UserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[uuid.UUID]*entity.User),
	}
}

// Create persists a new user.
func (s *UserStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

// FindByID retrieves a user by their ID.
func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}
	copied := *user
	return &copied, nil
}

// FindByEmail retrieves a user by their email address.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

// ExistsByEmail reports whether a user with the given email exists.
func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// UpdateSettings persists new settings for a user.
func (s *UserStore) UpdateSettings(ctx context.Context, userID uuid.UUID, settings entity.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}
	user.Settings = settings
	return nil
}
