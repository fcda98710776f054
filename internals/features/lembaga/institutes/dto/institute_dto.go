// internals/features/lembaga/institutes/dto/institute_dto.go
package dto

import (
	"strings"

	model "echomind_backend/internals/features/lembaga/institutes/model"
)

type CreateInstituteRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Address      *string `json:"address" validate:"omitempty"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
}

func (r *CreateInstituteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = trimPtr(r.Address)
	r.ContactEmail = trimPtr(r.ContactEmail)
}

func (r *CreateInstituteRequest) ToModel() *model.InstituteModel {
	return &model.InstituteModel{
		Name:         r.Name,
		Address:      r.Address,
		ContactEmail: r.ContactEmail,
	}
}

type UpdateInstituteRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address      *string `json:"address" validate:"omitempty"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
}

func (r *UpdateInstituteRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	r.Address = trimPtr(r.Address)
	r.ContactEmail = trimPtr(r.ContactEmail)
}

func (r *UpdateInstituteRequest) Updates() map[string]any {
	m := map[string]any{}
	if r.Name != nil {
		m["name"] = *r.Name
	}
	if r.Address != nil {
		m["address"] = *r.Address
	}
	if r.ContactEmail != nil {
		m["contact_email"] = *r.ContactEmail
	}
	return m
}

type InstituteItem struct {
	model.InstituteModel
	ProfessorCount int64 `json:"professor_count"`
	StudentCount   int64 `json:"student_count"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
