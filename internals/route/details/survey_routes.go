package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentRoute "echomind_backend/internals/features/surveys/assignments/route"
	reportRoute "echomind_backend/internals/features/surveys/reports/route"
	responseRoute "echomind_backend/internals/features/surveys/responses/route"
	surveyRoute "echomind_backend/internals/features/surveys/surveys/route"
)

func SurveyRoutes(api fiber.Router, db *gorm.DB) {
	surveyRoute.SurveyUserRoutes(api, db)
	surveyRoute.SurveyAdminRoutes(api, db)
	assignmentRoute.AssignmentRoutes(api, db)
	responseRoute.ResponseRoutes(api, db)
	reportRoute.ReportRoutes(api, db)
}
