package controller

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	dto "echomind_backend/internals/features/surveys/responses/dto"
	"echomind_backend/internals/features/surveys/responses/service"
	helper "echomind_backend/internals/helpers"
)

type ResponseController struct {
	DB *gorm.DB
}

func NewResponseController(db *gorm.DB) *ResponseController {
	return &ResponseController{DB: db}
}

// GET /api/survey-responses/:classroomId
func (ctrl *ResponseController) ListMine(c *fiber.Ctx) error {
	classroomID, err := helper.ParseUintParam(c, "classroomId")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	items, err := service.ListMine(c.UserContext(), ctrl.DB, classroomID, studentID)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ResponsesResponse{Responses: items})
}

// POST /api/survey-responses
func (ctrl *ResponseController) Submit(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.SubmitResponsesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	res, err := service.Submit(c.UserContext(), ctrl.DB, studentID, req)
	if err != nil {
		return helper.JsonFault(c, err)
	}

	log.WithFields(log.Fields{"classroom_id": res.ClassroomID, "saved": res.Saved}).Info("survey responses saved")
	return helper.JsonCreated(c, "Survey responses submitted", res)
}
