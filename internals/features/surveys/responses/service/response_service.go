// internals/features/surveys/responses/service/response_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classroomService "echomind_backend/internals/features/school/classrooms/service"
	dto "echomind_backend/internals/features/surveys/responses/dto"
	model "echomind_backend/internals/features/surveys/responses/model"
	surveyService "echomind_backend/internals/features/surveys/surveys/service"
	"echomind_backend/internals/helpers/fault"
)

const (
	MinRating = 1
	MaxRating = 5
)

// ListMine: jawaban student di classroom (untuk pre-populate form).
func ListMine(ctx context.Context, db *gorm.DB, classroomID uint, studentID uuid.UUID) ([]dto.ResponseItem, error) {
	if _, err := classroomService.LoadEnrolledClassroom(ctx, db, classroomID, studentID); err != nil {
		return nil, err
	}
	out := make([]dto.ResponseItem, 0)
	err := db.WithContext(ctx).Model(&model.SurveyResponseModel{}).
		Select("survey_question_id, rating").
		Where("classroom_id = ? AND student_id = ?", classroomID, studentID).
		Order("survey_question_id ASC").
		Scan(&out).Error
	return out, err
}

// ValidateBatch memastikan batch lengkap: rating 1..5, id milik survey, tanpa duplikat,
// dan mencakup seluruh pertanyaan.
func ValidateBatch(questionIDs []uint, items []dto.ResponseItem) map[string][]string {
	fields := map[string][]string{}
	valid := make(map[uint]struct{}, len(questionIDs))
	for _, id := range questionIDs {
		valid[id] = struct{}{}
	}

	seen := make(map[uint]struct{}, len(items))
	for i, it := range items {
		key := fmt.Sprintf("responses[%d]", i)
		if it.Rating < MinRating || it.Rating > MaxRating {
			fields[key] = append(fields[key], "rating must be between 1 and 5")
		}
		if _, ok := valid[it.SurveyQuestionID]; !ok {
			fields[key] = append(fields[key], "question does not belong to the assigned survey")
			continue
		}
		if _, dup := seen[it.SurveyQuestionID]; dup {
			fields[key] = append(fields[key], "duplicate question")
			continue
		}
		seen[it.SurveyQuestionID] = struct{}{}
	}

	if len(fields) == 0 && len(seen) != len(valid) {
		fields["responses"] = []string{
			fmt.Sprintf("all %d questions must be answered (got %d)", len(valid), len(seen)),
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Submit menyimpan satu batch dalam satu transaksi; upsert per (classroom, student, question).
func Submit(ctx context.Context, db *gorm.DB, studentID uuid.UUID, req dto.SubmitResponsesRequest) (*dto.SubmitResult, error) {
	cls, err := classroomService.LoadEnrolledClassroom(ctx, db, req.ClassroomID, studentID)
	if err != nil {
		return nil, err
	}
	if cls.SurveyID == nil {
		return nil, fault.Validation("No survey is assigned to this classroom", nil)
	}

	tree, err := surveyService.LoadTree(ctx, db, *cls.SurveyID)
	if err != nil {
		return nil, err
	}
	if fields := ValidateBatch(tree.QuestionIDs(), req.Responses); fields != nil {
		return nil, fault.Validation("Incomplete or invalid survey responses", fields)
	}

	now := time.Now().UTC()
	rows := make([]model.SurveyResponseModel, 0, len(req.Responses))
	for _, it := range req.Responses {
		rows = append(rows, model.SurveyResponseModel{
			ClassroomID:      cls.ID,
			StudentID:        studentID,
			SurveyQuestionID: it.SurveyQuestionID,
			Rating:           it.Rating,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "classroom_id"}, {Name: "student_id"}, {Name: "survey_question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	return &dto.SubmitResult{ClassroomID: cls.ID, SurveyID: *cls.SurveyID, Saved: len(rows)}, nil
}
