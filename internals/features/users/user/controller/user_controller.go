package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	authHelper "echomind_backend/internals/features/users/auth/helper"
	"echomind_backend/internals/features/users/user/dto"
	"echomind_backend/internals/features/users/user/model"
	helper "echomind_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// POST /api/professor-register (admin)
func (uc *UserController) RegisterProfessor(c *fiber.Ctx) error {
	var req dto.RegisterProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}
	if err := authHelper.ValidatePasswordStrength(req.Password); err != nil {
		return helper.JsonValidationError(c, err.Error(), map[string][]string{"password": {err.Error()}})
	}

	ctx := c.UserContext()
	var n int64
	if err := uc.DB.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", req.Email).Count(&n).Error; err != nil {
		return helper.JsonFault(c, err)
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	u := model.UserModel{
		UserName:    req.UserName,
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    hash,
		Role:        constants.RoleProfessor,
		InstituteID: req.InstituteID,
		IsActive:    true,
	}
	if err := uc.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return helper.JsonFault(c, err)
	}

	log.WithField("user_id", u.ID).Info("[SUCCESS] professor registered")
	return helper.JsonCreated(c, "Professor registered", dto.FromModel(u))
}

// listByRole: user per role + institute + jumlah kelas (professor: kelas diajar, student: kelas diikuti).
func (uc *UserController) listByRole(c *fiber.Ctx, role string) error {
	paging := helper.ResolvePaging(c, 50, 200)
	ctx := c.UserContext()

	base := uc.DB.WithContext(ctx).Table("users u").Where("u.role = ?", role)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		base = base.Where("LOWER(u.user_name) LIKE ? OR LOWER(u.email) LIKE ? OR LOWER(COALESCE(u.full_name, '')) LIKE ?", like, like, like)
	}
	if inst := c.QueryInt("institute_id"); inst > 0 {
		base = base.Where("u.institute_id = ?", inst)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonFault(c, err)
	}

	countExpr := "(SELECT COUNT(*) FROM classroom_students cs WHERE cs.student_id = u.id)"
	if role == constants.RoleProfessor {
		countExpr = "(SELECT COUNT(*) FROM classrooms cl WHERE cl.professor_id = u.id AND cl.deleted_at IS NULL)"
	}

	items := make([]dto.UserItem, 0)
	err := base.
		Select("u.id, u.user_name, u.full_name, u.email, u.role, u.institute_id, i.name AS institute_name, u.is_active, u.created_at, " + countExpr + " AS classroom_count").
		Joins("LEFT JOIN institutes i ON i.id = u.institute_id").
		Order("u.user_name ASC").
		Scopes(paging.Scope).
		Scan(&items).Error
	if err != nil {
		return helper.JsonFault(c, err)
	}

	pg := paging.Result(total, len(items))
	return helper.JsonList(c, "OK", items, &pg)
}

// getOneByRole: detail user; role lain dianggap tidak ada (404).
func (uc *UserController) getOneByRole(c *fiber.Ctx, role, label string) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parameter: id")
	}

	var u model.UserModel
	if err := uc.DB.WithContext(c.UserContext()).
		Where("id = ? AND role = ?", id, role).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, label+" not found")
		}
		return helper.JsonFault(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromModel(u))
}

// GET /api/get-professors
func (uc *UserController) GetProfessors(c *fiber.Ctx) error {
	return uc.listByRole(c, constants.RoleProfessor)
}

// GET /api/get-one-prof/:id
func (uc *UserController) GetProfessor(c *fiber.Ctx) error {
	return uc.getOneByRole(c, constants.RoleProfessor, "Professor")
}

// GET /api/get-students
func (uc *UserController) GetStudents(c *fiber.Ctx) error {
	return uc.listByRole(c, constants.RoleStudent)
}

// GET /api/get-student/:id
func (uc *UserController) GetStudent(c *fiber.Ctx) error {
	return uc.getOneByRole(c, constants.RoleStudent, "Student")
}
