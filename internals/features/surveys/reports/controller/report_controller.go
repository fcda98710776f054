package controller

import (
	"github.com/gofiber/fiber/v2"

	classroomService "echomind_backend/internals/features/school/classrooms/service"
	"echomind_backend/internals/features/surveys/reports/service"
	helper "echomind_backend/internals/helpers"
)

type ReportController struct {
	Svc *service.ReportService
}

func NewReportController(svc *service.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

// GET /api/classrooms/:id/survey-report
func (ctrl *ReportController) SurveyReport(c *fiber.Ctx) error {
	classroomID, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	ctx := c.UserContext()
	cls, err := classroomService.LoadManagedClassroom(ctx, ctrl.Svc.DB, classroomID, userID, helper.GetRoleFromToken(c))
	if err != nil {
		return helper.JsonFault(c, err)
	}

	report, err := ctrl.Svc.BuildReport(ctx, cls)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, "OK", report)
}
