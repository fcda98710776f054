package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instituteRoute "echomind_backend/internals/features/lembaga/institutes/route"
)

func LembagaRoutes(api fiber.Router, db *gorm.DB) {
	instituteRoute.InstituteAdminRoutes(api, db)
}
