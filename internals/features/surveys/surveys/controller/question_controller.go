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

type SurveyQuestionController struct {
	DB *gorm.DB
}

func NewSurveyQuestionController(db *gorm.DB) *SurveyQuestionController {
	return &SurveyQuestionController{DB: db}
}

// ✅ Create menambahkan pertanyaan baru di akhir section (order_index = max+1).
func (ctrl *SurveyQuestionController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	q := model.SurveyQuestionModel{
		SectionID:    req.SectionID,
		QuestionText: req.QuestionText,
	}
	if err := service.CreateQuestion(c.UserContext(), ctrl.DB, &q); err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonCreated(c, "Question created", q)
}

// ✅ Update mengubah teks pertanyaan.
func (ctrl *SurveyQuestionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	ctx := c.UserContext()
	var q model.SurveyQuestionModel
	if err := ctrl.DB.WithContext(ctx).First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonFault(c, err)
	}
	if err := ctrl.DB.WithContext(ctx).Model(&q).Update("question_text", req.QuestionText).Error; err != nil {
		return helper.JsonFault(c, err)
	}
	q.QuestionText = req.QuestionText
	return helper.JsonUpdated(c, "Question updated", q)
}

// ✅ Delete menghapus pertanyaan (beserta jawaban yang sudah masuk).
func (ctrl *SurveyQuestionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	if err := service.DeleteQuestion(c.UserContext(), ctrl.DB, id); err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"id": id})
}
