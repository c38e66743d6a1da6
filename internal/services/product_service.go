package services

import (
	"context"
	"strings"
	"time"

	"platzistore/internal/apperrors"
	"platzistore/internal/models"
	"platzistore/internal/repositories"

	"go.uber.org/zap"
)

// EventPublisher receives product change events after successful writes.
type EventPublisher interface {
	PublishProductEvent(event models.ProductEvent) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// List returns every product, or those sharing a tag with tags. It never returns nil on success.
func (s *ProductService) List(ctx context.Context, tags []string) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx, tags)
	if err != nil {
		return nil, apperrors.Wrap("list products", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetByID returns a product. Unknown ids yield an error matching apperrors.ErrNotFound.
func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, canonicalID(id))
	if err != nil {
		return nil, apperrors.Wrap("get product", err)
	}
	return product, nil
}

// Create stores a new product and returns its generated id.
func (s *ProductService) Create(ctx context.Context, input models.ProductInput) (string, error) {
	product := input.ToProduct()
	if err := s.repo.Create(ctx, &product); err != nil {
		return "", apperrors.Wrap("create product", err)
	}
	s.publish(models.ProductCreated, product.ID)
	return product.ID, nil
}

// UpdateByID merges patch into the product and returns its id.
func (s *ProductService) UpdateByID(ctx context.Context, id string, patch models.ProductPatch) (string, error) {
	id = canonicalID(id)
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return "", apperrors.Wrap("update product", err)
	}
	if !patch.IsEmpty() {
		s.publish(models.ProductUpdated, id)
	}
	return id, nil
}

// DeleteByID removes the product and returns its id.
func (s *ProductService) DeleteByID(ctx context.Context, id string) (string, error) {
	id = canonicalID(id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", apperrors.Wrap("delete product", err)
	}
	s.publish(models.ProductDeleted, id)
	return id, nil
}

// canonicalID lower-cases a hex id; stores keep ids in lower case.
func canonicalID(id string) string {
	return strings.ToLower(id)
}

// publish never fails the write that triggered it.
func (s *ProductService) publish(eventType, id string) {
	if s.publisher == nil {
		return
	}
	event := models.ProductEvent{Type: eventType, ProductID: id, OccurredAt: time.Now().UTC()}
	if err := s.publisher.PublishProductEvent(event); err != nil {
		s.logger.Warn("failed to publish product event",
			zap.String("type", eventType),
			zap.String("product_id", id),
			zap.Error(err),
		)
	}
}
