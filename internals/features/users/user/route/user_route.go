package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	userController "echomind_backend/internals/features/users/user/controller"
	authMiddleware "echomind_backend/internals/middlewares/auth"
)

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	uc := userController.NewUserController(db)

	adminOnly := authMiddleware.RequireRoles(
		constants.RoleErrorAdmin("manajemen user"),
		constants.AdminOnly,
	)

	api.Post("/professor-register", adminOnly, uc.RegisterProfessor)
	api.Get("/get-professors", adminOnly, uc.GetProfessors)
	api.Get("/get-one-prof/:id", adminOnly, uc.GetProfessor)
	api.Get("/get-students", adminOnly, uc.GetStudents)
	api.Get("/get-student/:id", adminOnly, uc.GetStudent)
}
