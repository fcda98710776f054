package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"echomind_backend/internals/constants"
)

// GetUserIDFromToken: id user yang diset AuthMiddleware. Tanpa login → 401.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(constants.LocalUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals(constants.LocalRole).(string)
	return role
}
