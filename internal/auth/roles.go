package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mitrokit/ventures-api/internal/domain"
	apperrors "github.com/mitrokit/ventures-api/pkg/util"
)

// RequireRole ensures the principal's role sits at or above min in the role
// order. A missing principal is unauthenticated (401); a valid principal
// with an insufficient role is forbidden (403) — the two stay distinct.
func RequireRole(min domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !principal.Role.AtLeast(min) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a principal is present, regardless of role.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
