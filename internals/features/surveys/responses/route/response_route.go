package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	responseController "echomind_backend/internals/features/surveys/responses/controller"
	"echomind_backend/internals/middlewares"
	authMiddleware "echomind_backend/internals/middlewares/auth"
)

func ResponseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := responseController.NewResponseController(db)

	// 📝 student menjawab survei
	g := api.Group("/survey-responses",
		authMiddleware.RequireRoles(constants.RoleErrorStudent("mengisi survei"), constants.StudentOnly),
	)
	g.Get("/:classroomId", ctrl.ListMine)
	g.Post("/", middlewares.SubmissionRateLimiter(), ctrl.Submit)
}
