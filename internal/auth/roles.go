package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

// RequireAccount ensures the caller is authenticated.
func RequireAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireAdmin ensures the caller holds the administrator role.
// Standard accounts invoking administrator-only operations get a
// user-visible error and no state change.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !principal.IsAdmin() {
			return apperrors.NewForbidden("administrator role required")
		}
		return c.Next()
	}
}
