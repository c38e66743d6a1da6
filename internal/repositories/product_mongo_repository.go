package repositories

import (
	"context"
	"errors"
	"fmt"

	"platzistore/internal/apperrors"
	"platzistore/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductsCollection is the collection products are stored in.
const ProductsCollection = "products"

type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Image       string             `bson:"image"`
	Title       string             `bson:"title"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
	Tags        []string           `bson:"tags,omitempty"`
}

func (d productDocument) toModel() models.Product {
	return models.Product{
		ID:          d.ID.Hex(),
		Image:       d.Image,
		Title:       d.Title,
		Price:       d.Price,
		Description: d.Description,
		Tags:        d.Tags,
	}
}

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a repository over the products collection of db.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(ProductsCollection)}
}

// tagFilter matches documents whose tags intersect tags, or everything when tags is empty.
func tagFilter(tags []string) bson.M {
	if len(tags) == 0 {
		return bson.M{}
	}
	return bson.M{"tags": bson.M{"$in": tags}}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("product with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return oid, nil
}

// GetAll retrieves all products from the collection.
func (r *MongoProductRepository) GetAll(ctx context.Context, tags []string) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, tagFilter(tags))
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}

	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toModel())
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc productDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	product := doc.toModel()
	return &product, nil
}

// Create inserts a product and sets the ID generated by the driver.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	doc := productDocument{
		Image:       product.Image,
		Title:       product.Title,
		Price:       product.Price,
		Description: product.Description,
		Tags:        product.Tags,
	}
	if product.ID != "" {
		oid, err := primitive.ObjectIDFromHex(product.ID)
		if err != nil {
			return fmt.Errorf("invalid product ID %s: %w", product.ID, err)
		}
		doc.ID = oid
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("product with ID %s: %w", product.ID, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	product.ID = oid.Hex()
	return nil
}

// Update applies patch with $set. An empty patch only checks the product exists.
func (r *MongoProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch) error {
	if patch.IsEmpty() {
		_, err := r.GetByID(ctx, id)
		return err
	}

	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": patch.Fields()})
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product with ID %s not found for update: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a product by its ID.
func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product with ID %s not found for deletion: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
