package handlers

import (
	"context"
	"encoding/base64"
	"strings"

	"platzistore/internal/apperrors"
	"platzistore/internal/middleware"
	"platzistore/internal/models"
	"platzistore/internal/schemas"

	"github.com/gofiber/fiber/v2"
)

// AuthService is the account surface the auth handler depends on.
type AuthService interface {
	SignUp(ctx context.Context, input models.SignUpInput) (string, error)
	SignIn(ctx context.Context, email, password, apiKeyToken string) (*models.SignInResult, error)
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/sign-up", middleware.Pipeline(h.HandleSignUp,
		middleware.Validate(schemas.SignUpSchema, schemas.Body),
	))
	authRoutes.Post("/sign-in", middleware.Pipeline(h.HandleSignIn,
		middleware.Validate(schemas.SignInSchema, schemas.Body),
	))
}

// HandleSignUp registers a new user.
func (h *AuthHandler) HandleSignUp(c *fiber.Ctx) error {
	var input models.SignUpInput
	if err := decodeBody(c, &input); err != nil {
		return err
	}

	id, err := h.authService.SignUp(c.UserContext(), input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, id, "User created")
}

// HandleSignIn exchanges Basic credentials plus an API key token for a JWT.
func (h *AuthHandler) HandleSignIn(c *fiber.Ctx) error {
	email, password, ok := basicAuth(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return &apperrors.AuthenticationError{Reason: "basic credentials are required"}
	}

	var req struct {
		APIKeyToken string `json:"apiKeyToken"`
	}
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	result, err := h.authService.SignIn(c.UserContext(), email, password, req.APIKeyToken)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, result, "User signed in")
}

func basicAuth(header string) (username, password string, ok bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}
	username, password, ok = strings.Cut(string(decoded), ":")
	if !ok || username == "" {
		return "", "", false
	}
	return username, password, true
}
