package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	surveyController "echomind_backend/internals/features/surveys/surveys/controller"
	authMiddleware "echomind_backend/internals/middlewares/auth"
)

// SurveyAdminRoutes: authoring survey/section/question (admin saja).
func SurveyAdminRoutes(api fiber.Router, db *gorm.DB) {
	surveyCtrl := surveyController.NewSurveyController(db)
	sectionCtrl := surveyController.NewSectionController(db)
	questionCtrl := surveyController.NewSurveyQuestionController(db)

	adminOnly := authMiddleware.RequireRoles(
		constants.RoleErrorAdmin("mengelola survei"),
		constants.AdminOnly,
	)

	api.Post("/surveys", adminOnly, surveyCtrl.Create)
	api.Put("/surveys/:id", adminOnly, surveyCtrl.Update)
	api.Delete("/surveys/:id", adminOnly, surveyCtrl.Delete)

	sections := api.Group("/survey-sections", adminOnly)
	sections.Get("/:surveyId", sectionCtrl.ListBySurvey)
	sections.Post("/", sectionCtrl.Create)
	sections.Put("/:id", sectionCtrl.Update)
	sections.Delete("/:id", sectionCtrl.Delete)

	questions := api.Group("/survey-questions", adminOnly)
	questions.Post("/", questionCtrl.Create)
	questions.Put("/:id", questionCtrl.Update)
	questions.Delete("/:id", questionCtrl.Delete)
}

// SurveyUserRoutes: baca survey (list untuk professor/admin, tree untuk semua role).
func SurveyUserRoutes(api fiber.Router, db *gorm.DB) {
	surveyCtrl := surveyController.NewSurveyController(db)

	api.Get("/surveys",
		authMiddleware.RequireRoles(constants.RoleErrorProfessor("daftar survei"), constants.ProfessorAndAbove),
		surveyCtrl.List,
	)
	api.Get("/surveys/:id", surveyCtrl.GetTree)
}
