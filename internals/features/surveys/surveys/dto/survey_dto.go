// internals/features/surveys/surveys/dto/survey_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "echomind_backend/internals/features/surveys/surveys/model"
)

/* ===================== SURVEY ===================== */

type CreateSurveyRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending active closed"`
}

func (r *CreateSurveyRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = trimPtr(r.Description)
	r.Status = lowerPtr(r.Status)
}

func (r *CreateSurveyRequest) ToModel(createdBy *uuid.UUID) *model.SurveyModel {
	status := model.SurveyStatusPending
	if r.Status != nil {
		status = *r.Status
	}
	return &model.SurveyModel{
		Title:       r.Title,
		Description: r.Description,
		Status:      &status,
		CreatedBy:   createdBy,
	}
}

type UpdateSurveyRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending active closed"`
}

func (r *UpdateSurveyRequest) Normalize() {
	r.Title = trimPtrKeepEmpty(r.Title)
	r.Description = trimPtr(r.Description)
	r.Status = lowerPtr(r.Status)
}

// Updates hanya kolom yang dikirim.
func (r *UpdateSurveyRequest) Updates() map[string]any {
	m := map[string]any{}
	if r.Title != nil {
		m["title"] = *r.Title
	}
	if r.Description != nil {
		m["description"] = *r.Description
	}
	if r.Status != nil {
		m["status"] = *r.Status
	}
	return m
}

/* ===================== SECTION ===================== */

type CreateSectionRequest struct {
	SurveyID    uint    `json:"survey_id" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r *CreateSectionRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = trimPtr(r.Description)
}

type UpdateSectionRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r *UpdateSectionRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = trimPtr(r.Description)
}

/* ===================== QUESTION ===================== */

type CreateQuestionRequest struct {
	SectionID    uint   `json:"section_id" validate:"required,gt=0"`
	QuestionText string `json:"question_text" validate:"required"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.QuestionText = strings.TrimSpace(r.QuestionText)
}

type UpdateQuestionRequest struct {
	QuestionText string `json:"question_text" validate:"required"`
}

func (r *UpdateQuestionRequest) Normalize() {
	r.QuestionText = strings.TrimSpace(r.QuestionText)
}

/* ===================== RESPONSES ===================== */

type SurveyListItem struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Status        *string `json:"status,omitempty"`
	SectionCount  int64   `json:"section_count"`
	QuestionCount int64   `json:"question_count"`
}

/* --- helpers kecil --- */

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

func trimPtrKeepEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func lowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	if v == "" {
		return nil
	}
	return &v
}
