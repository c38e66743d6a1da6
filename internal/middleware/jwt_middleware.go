package middleware

import (
	"strings"

	"platzistore/internal/apperrors"
	"platzistore/internal/models"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// TokenVerifier verifies a bearer token and returns its principal.
type TokenVerifier interface {
	VerifyToken(token string) (*models.Principal, error)
}

// Authenticate verifies the bearer token and stores the principal in the request locals.
func Authenticate(verifier TokenVerifier) Stage {
	return Stage{
		Name: "authenticate",
		Run: func(c *fiber.Ctx) error {
			authHeader := c.Get(fiber.HeaderAuthorization)
			if authHeader == "" {
				return &apperrors.AuthenticationError{Reason: "authorization header is required"}
			}

			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				return &apperrors.AuthenticationError{Reason: "authorization header format must be 'Bearer <token>'"}
			}

			principal, err := verifier.VerifyToken(strings.TrimSpace(parts[1]))
			if err != nil {
				return err
			}

			c.Locals(principalKey, principal)
			return nil
		},
	}
}

// PrincipalFrom returns the principal attached by Authenticate, if any.
func PrincipalFrom(c *fiber.Ctx) (*models.Principal, bool) {
	p, ok := c.Locals(principalKey).(*models.Principal)
	return p, ok && p != nil
}
