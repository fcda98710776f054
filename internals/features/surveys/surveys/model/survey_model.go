package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SurveyStatusPending = "pending"
	SurveyStatusActive  = "active"
	SurveyStatusClosed  = "closed"
)

// SurveyModel = root dari tree survey → sections → questions
type SurveyModel struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Status      *string    `gorm:"type:varchar(20);default:'pending'" json:"status,omitempty"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Sections []SurveySectionModel `gorm:"foreignKey:SurveyID" json:"sections,omitempty"`
}

func (SurveyModel) TableName() string { return "surveys" }

type SurveySectionModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SurveyID    uint      `gorm:"not null;index" json:"survey_id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	OrderIndex  int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []SurveyQuestionModel `gorm:"foreignKey:SectionID" json:"questions"`
}

func (SurveySectionModel) TableName() string { return "survey_sections" }

type SurveyQuestionModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SectionID    uint      `gorm:"not null;index" json:"section_id"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`
	OrderIndex   int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SurveyQuestionModel) TableName() string { return "survey_questions" }

// QuestionCount menghitung total pertanyaan di seluruh section.
func (s SurveyModel) QuestionCount() int {
	n := 0
	for _, sec := range s.Sections {
		n += len(sec.Questions)
	}
	return n
}

// QuestionIDs = flatten seluruh id pertanyaan (urutan section lalu question)
func (s SurveyModel) QuestionIDs() []uint {
	out := make([]uint, 0, s.QuestionCount())
	for _, sec := range s.Sections {
		for _, q := range sec.Questions {
			out = append(out, q.ID)
		}
	}
	return out
}
