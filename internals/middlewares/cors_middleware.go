package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"echomind_backend/internals/configs"
)

// CorsMiddleware: origin frontend dari CORS_ORIGINS, credentials aktif (cookie access_token).
// Wildcard tidak boleh dipakai bersama credentials, jadi list kosong jatuh ke origin dev.
func CorsMiddleware() fiber.Handler {
	origins := configs.CorsOrigins
	if len(origins) == 0 {
		origins = configs.DefaultCorsOrigins()
	}
	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		if o != "*" {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 {
		allowed = configs.DefaultCorsOrigins()
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowed, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: true,
		MaxAge:           600,
	})
}
