package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	instituteController "echomind_backend/internals/features/lembaga/institutes/controller"
	authMiddleware "echomind_backend/internals/middlewares/auth"
)

func InstituteAdminRoutes(api fiber.Router, db *gorm.DB) {
	h := instituteController.NewInstituteController(db)

	// 🏢 INSTITUTES (admin saja)
	g := api.Group("/institutes",
		authMiddleware.RequireRoles(constants.RoleErrorAdmin("mengelola institusi"), constants.AdminOnly),
	)
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
