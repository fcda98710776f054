package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"

	"echomind_backend/internals/constants"
)

const headerRequestID = "X-Request-ID"

// RequestContext memberi setiap request id (dipakai log & response header) dan
// context dengan deadline, yang diteruskan ke query gorm lewat c.UserContext().
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(headerRequestID)
		if id == "" || len(id) > 64 {
			id = utils.UUID()
		}
		c.Set(headerRequestID, id)
		c.Locals(constants.LocalRequestID, id)

		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// ExtendDeadline mengganti deadline RequestContext untuk route yang memang lama
// (mis. analisis AI). Nilai context lain tetap dibawa.
func ExtendDeadline(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.UserContext()), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
