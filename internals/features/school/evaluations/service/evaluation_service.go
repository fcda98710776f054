// internals/features/school/evaluations/service/evaluation_service.go
package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classroomModel "echomind_backend/internals/features/school/classrooms/model"
	classroomService "echomind_backend/internals/features/school/classrooms/service"
	model "echomind_backend/internals/features/school/evaluations/model"
	"echomind_backend/internals/helpers/fault"
)

// Upsert: satu evaluasi per (classroom, student); kirim ulang = update.
func Upsert(ctx context.Context, db *gorm.DB, classroomID uint, studentID uuid.UUID, rating int, comment *string) (*model.ClassroomEvaluationModel, error) {
	if _, err := classroomService.LoadEnrolledClassroom(ctx, db, classroomID, studentID); err != nil {
		return nil, err
	}

	row := model.ClassroomEvaluationModel{
		ClassroomID: classroomID,
		StudentID:   studentID,
		Rating:      rating,
		Comment:     comment,
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "classroom_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// AnonymousEvaluation: tanpa identitas student.
type AnonymousEvaluation struct {
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type EvaluationSummary struct {
	Evaluations []AnonymousEvaluation `json:"evaluations"`
	Count       int                   `json:"count"`
	Average     float64               `json:"average"`
}

func List(ctx context.Context, db *gorm.DB, classroomID uint) (*EvaluationSummary, error) {
	var rows []model.ClassroomEvaluationModel
	if err := db.WithContext(ctx).
		Where("classroom_id = ?", classroomID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := &EvaluationSummary{Evaluations: make([]AnonymousEvaluation, 0, len(rows)), Count: len(rows)}
	sum := 0
	for _, r := range rows {
		sum += r.Rating
		out.Evaluations = append(out.Evaluations, AnonymousEvaluation{
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	if len(rows) > 0 {
		out.Average = math.Round(float64(sum)/float64(len(rows))*100) / 100
	}
	return out, nil
}

// GenerateAnalysis mengirim komentar ke Analyzer lalu menyimpan hasilnya (jsonb).
func GenerateAnalysis(ctx context.Context, db *gorm.DB, analyzer Analyzer, cls *classroomModel.ClassroomModel, by uuid.UUID) (*model.ClassroomAnalysisModel, error) {
	var rows []model.ClassroomEvaluationModel
	if err := db.WithContext(ctx).Where("classroom_id = ?", cls.ID).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fault.Validation("No evaluations to analyze yet", nil)
	}

	in := AnalysisInput{ClassroomID: cls.ID, ClassroomName: cls.Name}
	for _, r := range rows {
		c := ""
		if r.Comment != nil {
			c = strings.TrimSpace(*r.Comment)
		}
		in.Evaluations = append(in.Evaluations, AnalysisComment{Rating: r.Rating, Comment: c})
	}

	raw, err := analyzer.Analyze(ctx, in)
	if err != nil {
		if errors.Is(err, ErrAnalyzerDisabled) {
			return nil, fault.Upstream(err.Error(), err, false)
		}
		return nil, fault.Upstream("AI analysis failed", err, true)
	}

	rec := model.ClassroomAnalysisModel{
		ClassroomID:     cls.ID,
		Analysis:        datatypes.JSON(raw),
		EvaluationCount: len(rows),
		GeneratedBy:     by,
	}
	if err := db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// LatestAnalysis: hasil terbaru; 404 bila belum pernah dibuat.
func LatestAnalysis(ctx context.Context, db *gorm.DB, classroomID uint) (*model.ClassroomAnalysisModel, error) {
	var rec model.ClassroomAnalysisModel
	err := db.WithContext(ctx).
		Where("classroom_id = ?", classroomID).
		Order("created_at DESC, id DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("No analysis generated for this classroom yet")
		}
		return nil, err
	}
	return &rec, nil
}
