package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"echomind_backend/internals/configs"
	"echomind_backend/internals/middlewares/logger"
)

// SetupMiddlewares: request id + deadline dipasang sebelum recover supaya
// panic log dan access log membawa reqid yang sama.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RequestContext(configs.RequestTimeout))
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())
}
