// internals/features/surveys/surveys/controller/survey_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "echomind_backend/internals/features/surveys/surveys/dto"
	model "echomind_backend/internals/features/surveys/surveys/model"
	"echomind_backend/internals/features/surveys/surveys/service"
	helper "echomind_backend/internals/helpers"
)

type SurveyController struct {
	DB *gorm.DB
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db}
}

/* =========================================================
   LIST  - GET /api/surveys?page=&per_page=&status=
   ========================================================= */
func (ctrl *SurveyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	ctx := c.UserContext()

	q := ctrl.DB.WithContext(ctx).Model(&model.SurveyModel{})
	if st := c.Query("status"); st != "" {
		q = q.Where("status = ?", st)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonFault(c, err)
	}

	items := make([]dto.SurveyListItem, 0)
	err := q.Select(`surveys.id, surveys.title, surveys.description, surveys.status,
			(SELECT COUNT(*) FROM survey_sections ss WHERE ss.survey_id = surveys.id) AS section_count,
			(SELECT COUNT(*) FROM survey_questions sq
				JOIN survey_sections ss ON ss.id = sq.section_id
				WHERE ss.survey_id = surveys.id) AS question_count`).
		Order("surveys.id DESC").
		Scopes(paging.Scope).
		Scan(&items).Error
	if err != nil {
		return helper.JsonFault(c, err)
	}

	pg := paging.Result(total, len(items))
	return helper.JsonList(c, "OK", items, &pg)
}

/* =========================================================
   CREATE  - POST /api/surveys
   ========================================================= */
func (ctrl *SurveyController) Create(c *fiber.Ctx) error {
	var req dto.CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	m := req.ToModel(optionalUserID(c))
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonFault(c, err)
	}
	m.Sections = []model.SurveySectionModel{}
	return helper.JsonCreated(c, "Survey created", m)
}

/* =========================================================
   TREE  - GET /api/surveys/:id
   ========================================================= */
func (ctrl *SurveyController) GetTree(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	tree, err := service.LoadTree(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, "OK", tree)
}

/* =========================================================
   UPDATE  - PUT /api/surveys/:id
   ========================================================= */
func (ctrl *SurveyController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}

	var req dto.UpdateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	ctx := c.UserContext()
	var m model.SurveyModel
	if err := ctrl.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey not found")
		}
		return helper.JsonFault(c, err)
	}

	if upd := req.Updates(); len(upd) > 0 {
		if err := ctrl.DB.WithContext(ctx).Model(&m).Updates(upd).Error; err != nil {
			return helper.JsonFault(c, err)
		}
	}

	tree, err := service.LoadTree(ctx, ctrl.DB, id)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonUpdated(c, "Survey updated", tree)
}

/* =========================================================
   DELETE  - DELETE /api/surveys/:id
   ========================================================= */
func (ctrl *SurveyController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	if err := service.DeleteSurvey(c.UserContext(), ctrl.DB, id); err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonDeleted(c, "Survey deleted", fiber.Map{"id": id})
}

// ✅ user id opsional (admin seed/route tanpa token tetap jalan)
func optionalUserID(c *fiber.Ctx) *uuid.UUID {
	if id, err := helper.GetUserIDFromToken(c); err == nil {
		return &id
	}
	return nil
}
