package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"echomind_backend/internals/configs"
	"echomind_backend/internals/constants"
	evaluationController "echomind_backend/internals/features/school/evaluations/controller"
	"echomind_backend/internals/features/school/evaluations/service"
	"echomind_backend/internals/middlewares"
	authMiddleware "echomind_backend/internals/middlewares/auth"
)

// EvaluationRoutes; analyzer nil → HTTPAnalyzer dari AI_SERVICE_URL.
func EvaluationRoutes(api fiber.Router, db *gorm.DB, analyzer service.Analyzer) {
	if analyzer == nil {
		analyzer = service.NewHTTPAnalyzer(configs.AIServiceURL, configs.AIServiceToken)
	}
	ctrl := evaluationController.NewEvaluationController(db, analyzer)

	api.Post("/classroom-students/evaluate/:classroomId",
		authMiddleware.RequireRoles(constants.RoleErrorStudent("evaluasi kelas"), constants.StudentOnly),
		ctrl.Evaluate,
	)

	profOrAdmin := authMiddleware.RequireRoles(
		constants.RoleErrorProfessor("evaluasi & analisis kelas"),
		constants.ProfessorAndAbove,
	)
	api.Get("/classrooms-evaluations/:classroomId", profOrAdmin, ctrl.List)
	// analisis AI bisa sampai timeout analyzer (30s), lebih lama dari deadline request biasa
	api.Post("/classrooms-generate-ai/:classroomId",
		profOrAdmin,
		middlewares.ExtendDeadline(configs.AnalysisTimeout),
		ctrl.GenerateAI,
	)
	api.Get("/classrooms-analysis/:classroomId", profOrAdmin, ctrl.LatestAnalysis)
}
