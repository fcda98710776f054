package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	assignmentController "echomind_backend/internals/features/surveys/assignments/controller"
	authMiddleware "echomind_backend/internals/middlewares/auth"
)

func AssignmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := assignmentController.NewAssignmentController(db)

	api.Get("/classrooms/:id/check-survey",
		authMiddleware.RequireRoles(constants.RoleErrorProfessor("cek survei kelas"), constants.ProfessorAndAbove),
		ctrl.CheckSurvey,
	)
	api.Post("/surveys-assign/:classroomId",
		authMiddleware.RequireRoles(constants.RoleErrorProfessor("assign survei"), constants.ProfessorOnly),
		ctrl.Assign,
	)
}
