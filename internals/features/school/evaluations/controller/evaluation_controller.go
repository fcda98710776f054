// internals/features/school/evaluations/controller/evaluation_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	classroomModel "echomind_backend/internals/features/school/classrooms/model"
	classroomService "echomind_backend/internals/features/school/classrooms/service"
	dto "echomind_backend/internals/features/school/evaluations/dto"
	"echomind_backend/internals/features/school/evaluations/service"
	helper "echomind_backend/internals/helpers"
)

type EvaluationController struct {
	DB       *gorm.DB
	Analyzer service.Analyzer
}

func NewEvaluationController(db *gorm.DB, analyzer service.Analyzer) *EvaluationController {
	return &EvaluationController{DB: db, Analyzer: analyzer}
}

// POST /api/classroom-students/evaluate/:classroomId
func (ctrl *EvaluationController) Evaluate(c *fiber.Ctx) error {
	classroomID, err := helper.ParseUintParam(c, "classroomId")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	row, err := service.Upsert(c.UserContext(), ctrl.DB, classroomID, studentID, req.Rating, req.Comment)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonCreated(c, "Evaluation submitted", fiber.Map{
		"classroom_id": row.ClassroomID,
		"rating":       row.Rating,
		"comment":      row.Comment,
	})
}

// GET /api/classrooms-evaluations/:classroomId  (anonim)
func (ctrl *EvaluationController) List(c *fiber.Ctx) error {
	cls, err := ctrl.loadManaged(c)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	out, err := service.List(c.UserContext(), ctrl.DB, cls.ID)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/classrooms-generate-ai/:classroomId
func (ctrl *EvaluationController) GenerateAI(c *fiber.Ctx) error {
	cls, err := ctrl.loadManaged(c)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	userID, _ := helper.GetUserIDFromToken(c)

	rec, err := service.GenerateAnalysis(c.UserContext(), ctrl.DB, ctrl.Analyzer, cls, userID)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	log.WithFields(log.Fields{"classroom_id": cls.ID, "evaluations": rec.EvaluationCount}).Info("AI analysis generated")
	return helper.JsonCreated(c, "AI analysis generated", rec)
}

// GET /api/classrooms-analysis/:classroomId
func (ctrl *EvaluationController) LatestAnalysis(c *fiber.Ctx) error {
	cls, err := ctrl.loadManaged(c)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	rec, err := service.LatestAnalysis(c.UserContext(), ctrl.DB, cls.ID)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, "OK", rec)
}

func (ctrl *EvaluationController) loadManaged(c *fiber.Ctx) (*classroomModel.ClassroomModel, error) {
	id, err := helper.ParseUintParam(c, "classroomId")
	if err != nil {
		return nil, err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	return classroomService.LoadManagedClassroom(c.UserContext(), ctrl.DB, id, userID, helper.GetRoleFromToken(c))
}
