// internals/features/school/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	dto "echomind_backend/internals/features/school/classrooms/dto"
	model "echomind_backend/internals/features/school/classrooms/model"
	"echomind_backend/internals/features/school/classrooms/service"
	helper "echomind_backend/internals/helpers"
)

const joinCodeLength = 6

type ClassroomController struct {
	DB *gorm.DB
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db}
}

// studentCounts: classroom_id → jumlah student (satu query GROUP BY).
func (ctrl *ClassroomController) studentCounts(c *fiber.Ctx, ids []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []struct {
		ClassroomID uint
		N           int64
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ClassroomStudentModel{}).
		Select("classroom_id, COUNT(*) AS n").
		Where("classroom_id IN ?", ids).
		Group("classroom_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ClassroomID] = r.N
	}
	return out, nil
}

func (ctrl *ClassroomController) listByArchived(c *fiber.Ctx, archived bool) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctrl.DB.WithContext(c.UserContext()).Where("is_archived = ?", archived)
	if helper.GetRoleFromToken(c) != constants.RoleAdmin {
		q = q.Where("professor_id = ?", userID)
	} else if pid := c.Query("professor_id"); pid != "" {
		if p, err := uuid.Parse(pid); err == nil {
			q = q.Where("professor_id = ?", p)
		}
	}

	var rows []model.ClassroomModel
	if err := q.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return helper.JsonFault(c, err)
	}

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	counts, err := ctrl.studentCounts(c, ids)
	if err != nil {
		return helper.JsonFault(c, err)
	}

	out := make([]dto.ClassroomResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToClassroomResponse(r, counts[r.ID]))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/classrooms
func (ctrl *ClassroomController) List(c *fiber.Ctx) error {
	return ctrl.listByArchived(c, false)
}

// GET /api/classrooms-archived
func (ctrl *ClassroomController) ListArchived(c *fiber.Ctx) error {
	return ctrl.listByArchived(c, true)
}

// POST /api/classrooms
func (ctrl *ClassroomController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	ctx := c.UserContext()
	code, err := helper.EnsureUniqueCode(ctx, ctrl.DB, "classrooms", "code", joinCodeLength)
	if err != nil {
		return helper.JsonFault(c, err)
	}

	m := req.ToModel(userID, code)
	if m.InstituteID == nil {
		// default: institute milik professor
		var inst struct{ InstituteID *uint }
		if err := ctrl.DB.WithContext(ctx).Table("users").Select("institute_id").
			Where("id = ?", userID).Take(&inst).Error; err == nil {
			m.InstituteID = inst.InstituteID
		}
	}
	if err := ctrl.DB.WithContext(ctx).Create(m).Error; err != nil {
		return helper.JsonFault(c, err)
	}

	log.WithFields(log.Fields{"classroom_id": m.ID, "code": m.Code}).Info("classroom created")
	return helper.JsonCreated(c, "Classroom created", dto.ToClassroomResponse(*m, 0))
}

// GET /api/classrooms/:id
func (ctrl *ClassroomController) GetOne(c *fiber.Ctx) error {
	cls, err := ctrl.loadManaged(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	counts, err := ctrl.studentCounts(c, []uint{cls.ID})
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToClassroomResponse(*cls, counts[cls.ID]))
}

// PUT /api/classrooms-update/:id
func (ctrl *ClassroomController) Update(c *fiber.Ctx) error {
	cls, err := ctrl.loadManaged(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}

	var req dto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	ctx := c.UserContext()
	if upd := req.Updates(); len(upd) > 0 {
		if err := ctrl.DB.WithContext(ctx).Model(cls).Updates(upd).Error; err != nil {
			return helper.JsonFault(c, err)
		}
	}
	fresh, err := service.FindClassroom(ctx, ctrl.DB, cls.ID)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	counts, err := ctrl.studentCounts(c, []uint{cls.ID})
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonUpdated(c, "Classroom updated", dto.ToClassroomResponse(*fresh, counts[cls.ID]))
}

// PUT /api/classrooms-activate/:id  (toggle archive)
func (ctrl *ClassroomController) ToggleArchive(c *fiber.Ctx) error {
	cls, err := ctrl.loadManaged(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	next := !cls.IsArchived
	if err := ctrl.DB.WithContext(c.UserContext()).Model(cls).Update("is_archived", next).Error; err != nil {
		return helper.JsonFault(c, err)
	}
	cls.IsArchived = next

	msg := "Classroom activated"
	if next {
		msg = "Classroom archived"
	}
	return helper.JsonUpdated(c, msg, dto.ToClassroomResponse(*cls, 0))
}

// DELETE /api/classrooms/:id  (soft delete, survey dilepas)
func (ctrl *ClassroomController) Delete(c *fiber.Ctx) error {
	cls, err := ctrl.loadManaged(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	if err := service.DeleteClassroom(c.UserContext(), ctrl.DB, cls.ID); err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonDeleted(c, "Classroom deleted", fiber.Map{"id": cls.ID})
}

/* =========================================================
   STUDENT SIDE
   ========================================================= */

// POST /api/classrooms-self-enroll {code}
func (ctrl *ClassroomController) SelfEnroll(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var req dto.SelfEnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	ctx := c.UserContext()
	var cls model.ClassroomModel
	if err := ctrl.DB.WithContext(ctx).Where("code = ?", req.Code).First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Classroom code not found")
		}
		return helper.JsonFault(c, err)
	}
	if cls.IsArchived {
		return helper.JsonError(c, fiber.StatusConflict, "Classroom is archived")
	}

	enrolled, err := service.IsEnrolled(ctx, ctrl.DB, cls.ID, studentID)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	if enrolled {
		return helper.JsonError(c, fiber.StatusConflict, "Already enrolled in this classroom")
	}

	row := model.ClassroomStudentModel{ClassroomID: cls.ID, StudentID: studentID}
	if err := ctrl.DB.WithContext(ctx).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Already enrolled in this classroom")
		}
		return helper.JsonFault(c, err)
	}
	return helper.JsonCreated(c, "Enrolled successfully", dto.ToClassroomResponse(cls, 0))
}

// GET /api/classrooms-student
func (ctrl *ClassroomController) ListMine(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []model.ClassroomModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Joins("JOIN classroom_students cs ON cs.classroom_id = classrooms.id").
		Where("cs.student_id = ?", studentID).
		Order("classrooms.id DESC").
		Find(&rows).Error
	if err != nil {
		return helper.JsonFault(c, err)
	}

	out := make([]dto.ClassroomResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToClassroomResponse(r, 0))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/check-if-enrolled/:classroomId
func (ctrl *ClassroomController) CheckIfEnrolled(c *fiber.Ctx) error {
	classroomID, err := helper.ParseUintParam(c, "classroomId")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	cls, err := service.LoadEnrolledClassroom(c.UserContext(), ctrl.DB, classroomID, studentID)
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, "Enrolled", dto.CheckEnrolledResponse{
		Enrolled:  true,
		Classroom: dto.EnrolledClassroom{ID: cls.ID, Name: cls.Name, SurveyID: cls.SurveyID},
	})
}

// GET /api/classrooms-students/:classroomId
func (ctrl *ClassroomController) ListStudents(c *fiber.Ctx) error {
	cls, err := ctrl.loadManaged(c, "classroomId")
	if err != nil {
		return helper.JsonFault(c, err)
	}

	out := make([]dto.StudentItem, 0)
	err = ctrl.DB.WithContext(c.UserContext()).
		Table("classroom_students cs").
		Select("u.id, u.user_name, u.full_name, u.email, cs.created_at AS enrolled_at").
		Joins("JOIN users u ON u.id = cs.student_id").
		Where("cs.classroom_id = ?", cls.ID).
		Order("u.user_name ASC").
		Scan(&out).Error
	if err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, "OK", out)
}

// loadManaged: parse param + cek hak akses (professor pemilik / admin).
func (ctrl *ClassroomController) loadManaged(c *fiber.Ctx, param string) (*model.ClassroomModel, error) {
	id, err := helper.ParseUintParam(c, param)
	if err != nil {
		return nil, err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	return service.LoadManagedClassroom(c.UserContext(), ctrl.DB, id, userID, helper.GetRoleFromToken(c))
}
