// internals/features/surveys/assignments/controller/assignment_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	classroomService "echomind_backend/internals/features/school/classrooms/service"
	dto "echomind_backend/internals/features/surveys/assignments/dto"
	surveyService "echomind_backend/internals/features/surveys/surveys/service"
	helper "echomind_backend/internals/helpers"
)

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

// GET /api/classrooms/:id/check-survey
func (ctrl *AssignmentController) CheckSurvey(c *fiber.Ctx) error {
	classroomID, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	ctx := c.UserContext()
	cls, err := classroomService.LoadManagedClassroom(ctx, ctrl.DB, classroomID, userID, helper.GetRoleFromToken(c))
	if err != nil {
		return helper.JsonFault(c, err)
	}

	if cls.SurveyID == nil {
		return helper.JsonOK(c, "No survey assigned", dto.CheckSurveyResponse{HasSurvey: false})
	}
	tree, err := surveyService.LoadTree(ctx, ctrl.DB, *cls.SurveyID)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, "Survey assigned", dto.CheckSurveyResponse{HasSurvey: true, Survey: tree})
}

// POST /api/surveys-assign/:classroomId
func (ctrl *AssignmentController) Assign(c *fiber.Ctx) error {
	classroomID, err := helper.ParseUintParam(c, "classroomId")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.AssignSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	ctx := c.UserContext()
	if _, err := classroomService.LoadOwnedClassroom(ctx, ctrl.DB, classroomID, userID); err != nil {
		return helper.JsonFault(c, err)
	}
	tree, err := surveyService.LoadTree(ctx, ctrl.DB, req.SurveyID)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	if err := classroomService.AssignSurvey(ctx, ctrl.DB, classroomID, req.SurveyID); err != nil {
		return helper.JsonFault(c, err)
	}

	log.WithFields(log.Fields{"classroom_id": classroomID, "survey_id": req.SurveyID}).Info("survey assigned")
	return helper.JsonOK(c, "Survey assigned", dto.CheckSurveyResponse{HasSurvey: true, Survey: tree})
}
