// internals/features/surveys/surveys/controller/section_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "echomind_backend/internals/features/surveys/surveys/dto"
	model "echomind_backend/internals/features/surveys/surveys/model"
	"echomind_backend/internals/features/surveys/surveys/service"
	helper "echomind_backend/internals/helpers"
)

type SectionController struct {
	DB *gorm.DB
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db}
}

// GET /api/survey-sections/:surveyId
// 404 kalau survey tidak ada; [] kalau survey belum punya section.
func (ctrl *SectionController) ListBySurvey(c *fiber.Ctx) error {
	surveyID, err := helper.ParseUintParam(c, "surveyId")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	sections, err := service.ListSections(c.UserContext(), ctrl.DB, surveyID)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, "OK", sections)
}

// POST /api/survey-sections
func (ctrl *SectionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	sec := model.SurveySectionModel{
		SurveyID:    req.SurveyID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := service.CreateSection(c.UserContext(), ctrl.DB, &sec); err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonCreated(c, "Section created", sec)
}

// PUT /api/survey-sections/:id
func (ctrl *SectionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	var req dto.UpdateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	ctx := c.UserContext()
	var sec model.SurveySectionModel
	if err := ctrl.DB.WithContext(ctx).First(&sec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section not found")
		}
		return helper.JsonFault(c, err)
	}

	if err := ctrl.DB.WithContext(ctx).Model(&sec).Updates(map[string]any{
		"title":       req.Title,
		"description": req.Description,
	}).Error; err != nil {
		return helper.JsonFault(c, err)
	}
	sec.Title, sec.Description = req.Title, req.Description
	return helper.JsonUpdated(c, "Section updated", sec)
}

// DELETE /api/survey-sections/:id
func (ctrl *SectionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	if err := service.DeleteSection(c.UserContext(), ctrl.DB, id); err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonDeleted(c, "Section deleted", fiber.Map{"id": id})
}
