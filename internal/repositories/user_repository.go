package repositories

import (
	"context"

	"platzistore/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create stores user and sets its ID. A taken email yields apperrors.ErrConflict.
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
