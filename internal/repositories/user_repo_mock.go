package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"platzistore/internal/apperrors"
	"platzistore/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users   map[string]models.User
	byEmail map[string]string
	mu      sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, taken := r.byEmail[key]; taken {
		return fmt.Errorf("email %s: %w", user.Email, apperrors.ErrConflict)
	}
	if user.ID == "" {
		user.ID = newID()
	}
	r.users[user.ID] = *user
	r.byEmail[key] = user.ID
	return nil
}

// GetByEmail returns a user by email, case-insensitively.
func (r *MockUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}
	user := r.users[id]
	return &user, nil
}
