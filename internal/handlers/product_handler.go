package handlers

import (
	"context"
	"encoding/json"

	"platzistore/internal/apperrors"
	"platzistore/internal/middleware"
	"platzistore/internal/models"
	"platzistore/internal/schemas"

	"github.com/gofiber/fiber/v2"
)

// ProductService is the product use-case surface the handler depends on.
type ProductService interface {
	List(ctx context.Context, tags []string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, input models.ProductInput) (string, error)
	UpdateByID(ctx context.Context, id string, patch models.ProductPatch) (string, error)
	DeleteByID(ctx context.Context, id string) (string, error)
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  ProductService
	verifier middleware.TokenVerifier
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service ProductService, verifier middleware.TokenVerifier) *ProductHandler {
	return &ProductHandler{
		service:  service,
		verifier: verifier,
	}
}

// RegisterRoutes registers the product routes. Mutations run
// authenticate, authorize and validate stages, in that order, before the handler.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	authenticate := middleware.Authenticate(h.verifier)
	validID := middleware.Validate(schemas.ProductIDSchema, schemas.Params)

	products := router.Group("/products")
	products.Get("/", middleware.Pipeline(h.HandleList,
		middleware.Validate(schemas.ProductQuerySchema, schemas.Query),
	))
	products.Get("/:id", middleware.Pipeline(h.HandleGet, validID))
	products.Post("/", middleware.Pipeline(h.HandleCreate,
		authenticate,
		middleware.RequireScopes(models.ScopeCreateProduct),
		middleware.Validate(schemas.CreateProductSchema, schemas.Body),
	))
	products.Put("/:id", middleware.Pipeline(h.HandleUpdate,
		authenticate,
		middleware.RequireScopes(models.ScopeUpdateProduct),
		validID,
		middleware.Validate(schemas.UpdateProductSchema, schemas.Body),
	))
	products.Delete("/:id", middleware.Pipeline(h.HandleDelete,
		authenticate,
		middleware.RequireScopes(models.ScopeDeleteProduct),
		validID,
	))
}

// HandleList lists products, optionally filtered by ?tags=a&tags=b or ?tags=a,b.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	var raw []string
	for _, v := range c.Context().QueryArgs().PeekMulti("tags") {
		raw = append(raw, string(v))
	}

	products, err := h.service.List(c.UserContext(), schemas.SplitList(raw))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, products, "Products listed")
}

// HandleGet retrieves a single product by its ID.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, product, "Product retrieved")
}

// HandleCreate creates a product and returns its ID.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := decodeBody(c, &input); err != nil {
		return err
	}

	id, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, id, "Product created")
}

// HandleUpdate applies a partial update to a product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var patch models.ProductPatch
	if err := decodeBody(c, &patch); err != nil {
		return err
	}

	id, err := h.service.UpdateByID(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, id, "Product updated")
}

// HandleDelete deletes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := h.service.DeleteByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, id, "Product deleted")
}

func respond(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(models.Envelope{Data: data, Message: message})
}

const errBodyShape = "body does not match the expected field types"

// decodeBody decodes an already validated JSON body. An empty body leaves v untouched.
func decodeBody(c *fiber.Ctx, v interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &apperrors.ValidationError{Source: string(schemas.Body), Details: []string{errBodyShape}}
	}
	return nil
}
