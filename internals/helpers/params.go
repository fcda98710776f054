package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"echomind_backend/internals/constants"
)

// ParseUintParam membaca path param numerik (> 0).
// Param kosong / tidak valid → *fiber.Error 400, tanpa query ke DB.
func ParseUintParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Missing parameter: "+name)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid parameter: "+name)
	}
	return uint(n), nil
}

// LogError mencatat error 5xx beserta request id.
func LogError(c *fiber.Ctx, msg string, err error) {
	entry := log.WithFields(log.Fields{
		"reqid":  c.Locals(constants.LocalRequestID),
		"method": c.Method(),
		"path":   c.Path(),
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}
