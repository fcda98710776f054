package middlewares

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"echomind_backend/internals/constants"
)

// RecoveryMiddleware: panic → log (dengan reqid) → error 500, dirender ErrorHandler jadi envelope JSON.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.WithFields(log.Fields{
				"reqid":  c.Locals(constants.LocalRequestID),
				"method": c.Method(),
				"path":   c.Path(),
			}).Error(fmt.Sprintf("💥 panic: %v", e))
		},
	})
}
