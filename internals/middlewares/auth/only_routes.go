package auth

import (
	"slices"

	"github.com/gofiber/fiber/v2"

	"echomind_backend/internals/constants"
	helper "echomind_backend/internals/helpers"
)

// RequireRoles lolos kalau role di Locals ada di allowed, selain itu 403 dengan message.
func RequireRoles(message string, allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(constants.LocalRole).(string)
		if role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Role not found")
		}
		if !slices.Contains(allowed, role) {
			return helper.JsonError(c, fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}
