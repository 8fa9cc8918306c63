package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshTokenKeyPrefix = "refresh_token:"

// RedisTokenStore implements adapter.RefreshTokenStore on Redis. Tokens are
// stored hashed; a leaked dump of the store cannot be replayed as tokens.
// Expiry is delegated to the key TTL.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a new RedisTokenStore.
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

// Save records a refresh token as valid until its TTL elapses.
func (s *RedisTokenStore) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(token), userID.String(), ttl).Err()
}

// IsValid reports whether the refresh token is recorded and unexpired.
func (s *RedisTokenStore) IsValid(ctx context.Context, token string) (bool, error) {
	_, err := s.client.Get(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Invalidate removes a refresh token.
func (s *RedisTokenStore) Invalidate(ctx context.Context, token string) error {
	return s.client.Del(ctx, tokenKey(token)).Err()
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return refreshTokenKeyPrefix + hex.EncodeToString(sum[:])
}
