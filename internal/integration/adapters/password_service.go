// Package adapters provides implementations of the application adapter
// interfaces backed by external libraries and services.
package adapters

import (
	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/money-manager/backend/internal/domain/error"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

// PasswordService implements adapter.PasswordService using bcrypt.
type PasswordService struct{}

// NewPasswordService creates a new PasswordService.
func NewPasswordService() *PasswordService {
	return &PasswordService{}
}

// HashPassword hashes a plain text password using bcrypt.
func (s *PasswordService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword compares a plain text password with a bcrypt hash.
func (s *PasswordService) VerifyPassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

// ValidatePasswordStrength validates if a password meets minimum requirements.
func (s *PasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return domainerror.ErrWeakPassword
	}
	return nil
}
