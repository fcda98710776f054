package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomRoute "echomind_backend/internals/features/school/classrooms/route"
	evaluationRoute "echomind_backend/internals/features/school/evaluations/route"
	evaluationService "echomind_backend/internals/features/school/evaluations/service"
)

func SchoolRoutes(api fiber.Router, db *gorm.DB, analyzer evaluationService.Analyzer) {
	classroomRoute.ClassroomRoutes(api, db)
	evaluationRoute.EvaluationRoutes(api, db, analyzer)
}
