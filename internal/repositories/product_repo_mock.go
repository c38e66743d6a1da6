package repositories

import (
	"context"
	"fmt"
	"sync"

	"platzistore/internal/apperrors"
	"platzistore/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	order    []string // insertion order, so listings are stable
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products, filtered by tags when given.
func (r *MockProductRepository) GetAll(_ context.Context, tags []string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, id := range r.order {
		p := r.products[id]
		if len(tags) > 0 && !p.HasAnyTag(tags) {
			continue
		}
		productList = append(productList, cloneProduct(p))
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, apperrors.ErrNotFound)
	}
	product = cloneProduct(product)
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = newID()
	}
	if _, exists := r.products[product.ID]; exists {
		return fmt.Errorf("product with ID %s: %w", product.ID, apperrors.ErrConflict)
	}
	r.products[product.ID] = cloneProduct(*product)
	r.order = append(r.order, product.ID)
	return nil
}

// Update merges patch into an existing product.
func (r *MockProductRepository) Update(_ context.Context, id string, patch models.ProductPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s not found for update: %w", id, apperrors.ErrNotFound)
	}
	patch.Apply(&product)
	r.products[id] = cloneProduct(product)
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %s not found for deletion: %w", id, apperrors.ErrNotFound)
	}
	delete(r.products, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneProduct(p models.Product) models.Product {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}
