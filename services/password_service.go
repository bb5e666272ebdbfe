package services

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordService hashes and checks account passwords
type PasswordService struct {
	cost int
}

// NewPasswordService creates a new password service
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordService{cost: cost}
}

// HashPassword hashes a password using bcrypt
func (s *PasswordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *PasswordService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var passwordService *PasswordService

// GetPasswordService returns the global password service instance
func GetPasswordService() *PasswordService {
	if passwordService == nil {
		passwordService = NewPasswordService(bcrypt.DefaultCost)
	}
	return passwordService
}

// HashPassword hashes a password using the global service
func HashPassword(password string) (string, error) {
	return GetPasswordService().HashPassword(password)
}

// VerifyPassword verifies a password using the global service
func VerifyPassword(hash, password string) bool {
	return GetPasswordService().VerifyPassword(hash, password)
}
