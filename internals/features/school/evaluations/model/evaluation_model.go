package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ClassroomEvaluationModel: rating + komentar student untuk satu classroom
type ClassroomEvaluationModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClassroomID uint      `gorm:"not null;uniqueIndex:uq_classroom_evaluation" json:"classroom_id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_classroom_evaluation" json:"student_id"`
	Rating      int       `gorm:"not null" json:"rating"`
	Comment     *string   `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClassroomEvaluationModel) TableName() string { return "classroom_evaluations" }

// ClassroomAnalysisModel menyimpan hasil analisis AI (jsonb apa adanya dari service)
type ClassroomAnalysisModel struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	ClassroomID     uint           `gorm:"not null;index" json:"classroom_id"`
	Analysis        datatypes.JSON `gorm:"type:jsonb;not null" json:"analysis"`
	EvaluationCount int            `gorm:"not null" json:"evaluation_count"`
	GeneratedBy     uuid.UUID      `gorm:"type:uuid;not null" json:"generated_by"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ClassroomAnalysisModel) TableName() string { return "classroom_analyses" }
