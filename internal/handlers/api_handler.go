package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// APIVersion is returned by the API root.
const APIVersion = "API v2"

// APIHandler serves the unauthenticated informational routes of the API.
type APIHandler struct {
	receiptPath string
}

// NewAPIHandler creates a new APIHandler serving receiptPath at /receipts.
func NewAPIHandler(receiptPath string) *APIHandler {
	return &APIHandler{receiptPath: receiptPath}
}

// RegisterRoutes registers the API root and receipt routes.
func (h *APIHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleVersion)
	router.Get("/receipts", h.HandleReceipt)
}

// HandleVersion replies with the API version string.
func (h *APIHandler) HandleVersion(c *fiber.Ctx) error {
	return c.SendString(APIVersion)
}

// HandleReceipt streams the receipt file.
func (h *APIHandler) HandleReceipt(c *fiber.Ctx) error {
	return c.SendFile(h.receiptPath)
}

// NotFound answers every unmatched route, whatever the verb.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString("Error 404")
}
