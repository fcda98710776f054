package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	log "github.com/sirupsen/logrus"
)

// LoggerMiddleware: access log ke logrus; /health tidak dicatat (dipoll load balancer).
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${locals:reqid} ${ip} ${locals:user_id} - ${method} ${path} - ${status} - ${latency}\n",
		Output:     log.StandardLogger().Writer(),
	})
}
