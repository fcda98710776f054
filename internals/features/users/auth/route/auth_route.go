// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "echomind_backend/internals/features/users/auth/controller"
	rateLimiter "echomind_backend/internals/middlewares"
	authMiddleware "echomind_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// ==========================
	// PUBLIC
	// Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)

	// ==========================
	// PROTECTED
	// ==========================
	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protectedAuth.Post("/logout", authController.Logout)
	protectedAuth.Get("/me", authController.Me)
	protectedAuth.Post("/change-password", authController.ChangePassword)
}
