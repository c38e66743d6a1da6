package repositories

import (
	"context"

	"platzistore/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository defines the interface for product data access.
// Lookups of unknown ids return an error wrapping apperrors.ErrNotFound.
type ProductRepository interface {
	// GetAll returns every product, or only those carrying one of tags when tags is not empty.
	GetAll(ctx context.Context, tags []string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// Create stores product and sets its generated ID.
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, patch models.ProductPatch) error
	Delete(ctx context.Context, id string) error
}

// newID generates a document id in the 24 hex character format for stores
// that do not generate one themselves.
func newID() string {
	return primitive.NewObjectID().Hex()
}
