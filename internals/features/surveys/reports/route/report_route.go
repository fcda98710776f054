package route

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	reportController "echomind_backend/internals/features/surveys/reports/controller"
	"echomind_backend/internals/features/surveys/reports/repository"
	"echomind_backend/internals/features/surveys/reports/service"
	authMiddleware "echomind_backend/internals/middlewares/auth"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	repo, err := repository.NewReportRepository(db)
	if err != nil {
		log.WithError(err).Fatal("gagal init report repository")
	}
	ctrl := reportController.NewReportController(service.NewReportService(db, repo, nil))

	api.Get("/classrooms/:id/survey-report",
		authMiddleware.RequireRoles(constants.RoleErrorProfessor("laporan survei"), constants.ProfessorAndAbove),
		ctrl.SurveyReport,
	)
}
