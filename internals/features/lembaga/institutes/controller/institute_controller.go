package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "echomind_backend/internals/features/lembaga/institutes/dto"
	model "echomind_backend/internals/features/lembaga/institutes/model"
	helper "echomind_backend/internals/helpers"
)

type InstituteController struct {
	DB *gorm.DB
}

func NewInstituteController(db *gorm.DB) *InstituteController {
	return &InstituteController{DB: db}
}

// GET /api/institutes
func (h *InstituteController) List(c *fiber.Ctx) error {
	var rows []model.InstituteModel
	if err := h.DB.WithContext(c.UserContext()).Order("name ASC").Find(&rows).Error; err != nil {
		return helper.JsonFault(c, err)
	}

	// hitung professor & student per institute (satu query)
	var counts []struct {
		InstituteID uint
		Role        string
		N           int64
	}
	if err := h.DB.WithContext(c.UserContext()).Table("users").
		Select("institute_id, role, COUNT(*) AS n").
		Where("institute_id IS NOT NULL").
		Group("institute_id, role").
		Scan(&counts).Error; err != nil {
		return helper.JsonFault(c, err)
	}
	type pair struct{ prof, stud int64 }
	byInst := map[uint]pair{}
	for _, r := range counts {
		p := byInst[r.InstituteID]
		switch r.Role {
		case "professor":
			p.prof = r.N
		case "student":
			p.stud = r.N
		}
		byInst[r.InstituteID] = p
	}

	out := make([]dto.InstituteItem, 0, len(rows))
	for _, r := range rows {
		p := byInst[r.ID]
		out = append(out, dto.InstituteItem{InstituteModel: r, ProfessorCount: p.prof, StudentCount: p.stud})
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/institutes
func (h *InstituteController) Create(c *fiber.Ctx) error {
	var req dto.CreateInstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonCreated(c, "Institute created", m)
}

// PUT /api/institutes/:id
func (h *InstituteController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	var req dto.UpdateInstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ok, err := helper.ValidateStruct(c, helper.Validator(), &req); !ok {
		return err
	}

	ctx := c.UserContext()
	var m model.InstituteModel
	if err := h.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Institute not found")
		}
		return helper.JsonFault(c, err)
	}
	if upd := req.Updates(); len(upd) > 0 {
		if err := h.DB.WithContext(ctx).Model(&m).Updates(upd).Error; err != nil {
			return helper.JsonFault(c, err)
		}
	}
	if err := h.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return helper.JsonFault(c, err)
	}
	return helper.JsonUpdated(c, "Institute updated", m)
}

// DELETE /api/institutes/:id (soft delete)
func (h *InstituteController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return helper.JsonFault(c, err)
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&model.InstituteModel{}, id)
	if res.Error != nil {
		return helper.JsonFault(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Institute not found")
	}
	return helper.JsonDeleted(c, "Institute deleted", fiber.Map{"id": id})
}
