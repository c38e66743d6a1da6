package middleware

import (
	"platzistore/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// RequireScopes lets the request through when the principal holds at least one of required.
// It must run after Authenticate.
func RequireScopes(required ...string) Stage {
	return Stage{
		Name: "authorize",
		Run: func(c *fiber.Ctx) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return &apperrors.AuthenticationError{Reason: "no authenticated principal"}
			}
			if !intersects(principal.Scopes, required) {
				return &apperrors.AuthorizationError{Required: required}
			}
			return nil
		},
	}
}

func intersects(granted, required []string) bool {
	set := make(map[string]struct{}, len(granted))
	for _, s := range granted {
		set[s] = struct{}{}
	}
	for _, s := range required {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
