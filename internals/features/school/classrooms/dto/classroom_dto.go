// internals/features/school/classrooms/dto/classroom_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "echomind_backend/internals/features/school/classrooms/model"
)

/* ===================== REQUESTS ===================== */

type CreateClassroomRequest struct {
	Name        string  `json:"name" validate:"required,max=150"`
	Subject     *string `json:"subject" validate:"omitempty,max=150"`
	Description *string `json:"description" validate:"omitempty"`
	InstituteID *uint   `json:"institute_id" validate:"omitempty,gt=0"`
}

func (r *CreateClassroomRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Subject = trimPtr(r.Subject)
	r.Description = trimPtr(r.Description)
}

func (r *CreateClassroomRequest) ToModel(professorID uuid.UUID, code string) *model.ClassroomModel {
	return &model.ClassroomModel{
		Name:        r.Name,
		Subject:     r.Subject,
		Description: r.Description,
		Code:        code,
		ProfessorID: professorID,
		InstituteID: r.InstituteID,
	}
}

type UpdateClassroomRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=150"`
	Subject     *string `json:"subject" validate:"omitempty,max=150"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r *UpdateClassroomRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	r.Subject = trimPtr(r.Subject)
	r.Description = trimPtr(r.Description)
}

func (r *UpdateClassroomRequest) Updates() map[string]any {
	m := map[string]any{}
	if r.Name != nil {
		m["name"] = *r.Name
	}
	if r.Subject != nil {
		m["subject"] = *r.Subject
	}
	if r.Description != nil {
		m["description"] = *r.Description
	}
	return m
}

type SelfEnrollRequest struct {
	Code string `json:"code" validate:"required,min=4,max=16"`
}

func (r *SelfEnrollRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
}

/* ===================== RESPONSES ===================== */

type ClassroomResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Subject      *string   `json:"subject,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Code         string    `json:"code"`
	ProfessorID  uuid.UUID `json:"professor_id"`
	InstituteID  *uint     `json:"institute_id,omitempty"`
	SurveyID     *uint     `json:"survey_id"`
	IsArchived   bool      `json:"is_archived"`
	StudentCount int64     `json:"student_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToClassroomResponse(m model.ClassroomModel, studentCount int64) ClassroomResponse {
	return ClassroomResponse{
		ID:           m.ID,
		Name:         m.Name,
		Subject:      m.Subject,
		Description:  m.Description,
		Code:         m.Code,
		ProfessorID:  m.ProfessorID,
		InstituteID:  m.InstituteID,
		SurveyID:     m.SurveyID,
		IsArchived:   m.IsArchived,
		StudentCount: studentCount,
		CreatedAt:    m.CreatedAt,
	}
}

// EnrolledClassroom = ringkasan untuk check-if-enrolled.
type EnrolledClassroom struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	SurveyID *uint  `json:"survey_id"`
}

type CheckEnrolledResponse struct {
	Enrolled  bool              `json:"enrolled"`
	Classroom EnrolledClassroom `json:"classroom"`
}

type StudentItem struct {
	ID         uuid.UUID `json:"id"`
	UserName   string    `json:"user_name"`
	FullName   *string   `json:"full_name,omitempty"`
	Email      string    `json:"email"`
	EnrolledAt time.Time `json:"enrolled_at"`
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
