package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassroomModel merepresentasikan tabel classrooms.
// SurveyID terisi saat survey di-assign; satu classroom maksimal satu survey.
type ClassroomModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Subject     *string   `gorm:"type:text" json:"subject,omitempty"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Code        string    `gorm:"size:16;uniqueIndex;not null" json:"code"`
	ProfessorID uuid.UUID `gorm:"type:uuid;not null;index" json:"professor_id"`
	InstituteID *uint     `gorm:"index" json:"institute_id,omitempty"`
	SurveyID    *uint     `gorm:"index" json:"survey_id"`
	IsArchived  bool      `gorm:"not null;default:false" json:"is_archived"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

// ClassroomStudentModel = enrollment student ke classroom
type ClassroomStudentModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClassroomID uint      `gorm:"not null;uniqueIndex:uq_classroom_student" json:"classroom_id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_classroom_student;index" json:"student_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ClassroomStudentModel) TableName() string { return "classroom_students" }
