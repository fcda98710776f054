package helper

import "github.com/gofiber/fiber/v2"

// FiberErrorHandler dipasang di fiber.Config.ErrorHandler supaya error yang lolos
// dari middleware (mis. *fiber.Error dari auth) tetap berbentuk envelope JSON.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	return JsonFault(c, err)
}
