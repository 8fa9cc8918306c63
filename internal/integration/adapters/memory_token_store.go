package adapters

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/money-manager/backend/internal/application/adapter"
)

// MemoryTokenStore implements adapter.RefreshTokenStore in memory. It backs
// demo mode, where no Redis instance is available; tokens do not survive a
// restart, which is acceptable there.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time // token -> expiry
	clock  adapter.Clock
}

// NewMemoryTokenStore creates a new MemoryTokenStore.
func NewMemoryTokenStore(clock adapter.Clock) *MemoryTokenStore {
	return &MemoryTokenStore{
		tokens: make(map[string]time.Time),
		clock:  clock,
	}
}

// Save records a refresh token as valid until expiry.
func (s *MemoryTokenStore) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = s.clock.Now().Add(ttl)
	return nil
}

// IsValid reports whether the refresh token is recorded and unexpired.
func (s *MemoryTokenStore) IsValid(ctx context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expiry, ok := s.tokens[token]
	if !ok {
		return false, nil
	}
	return s.clock.Now().Before(expiry), nil
}

// Invalidate removes a refresh token.
func (s *MemoryTokenStore) Invalidate(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
