package model

import (
	"time"

	"github.com/google/uuid"
)

// SurveyResponseModel: satu rating (1-5) per (classroom, student, question)
type SurveyResponseModel struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ClassroomID      uint      `gorm:"not null;uniqueIndex:uq_survey_response;index" json:"classroom_id"`
	StudentID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_survey_response" json:"student_id"`
	SurveyQuestionID uint      `gorm:"not null;uniqueIndex:uq_survey_response;index" json:"survey_question_id"`
	Rating           int       `gorm:"not null" json:"rating"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SurveyResponseModel) TableName() string { return "survey_responses" }
