package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "echomind_backend/internals/features/users/user/route"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(api, db)
}
