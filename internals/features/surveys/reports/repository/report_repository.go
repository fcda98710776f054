// internals/features/surveys/reports/repository/report_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// HistogramRow = satu baris hasil GROUP BY (question, rating).
type HistogramRow struct {
	QuestionID uint `db:"question_id"`
	Rating     int  `db:"rating"`
	Count      int  `db:"count"`
}

// ReportRepository: read path agregasi report lewat sqlx (di atas *sql.DB milik gorm).
type ReportRepository struct {
	db *sqlx.DB
}

// driverName memetakan dialector gorm ke nama driver sqlx (untuk bindvar).
func driverName(dialector string) string {
	switch dialector {
	case "sqlite":
		return "sqlite3"
	case "postgres":
		return "postgres"
	default:
		return dialector
	}
}

func NewReportRepository(gdb *gorm.DB) (*ReportRepository, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("report repository: %w", err)
	}
	return &ReportRepository{db: sqlx.NewDb(sqlDB, driverName(gdb.Dialector.Name()))}, nil
}

const histogramQuery = `
SELECT sr.survey_question_id AS question_id, sr.rating AS rating, COUNT(*) AS count
FROM survey_responses sr
JOIN survey_questions sq ON sq.id = sr.survey_question_id
JOIN survey_sections ss ON ss.id = sq.section_id
WHERE sr.classroom_id = ? AND ss.survey_id = ?
GROUP BY sr.survey_question_id, sr.rating
ORDER BY sr.survey_question_id, sr.rating`

// Histogram: question_id → rating → count (hanya rating yang ada jawabannya).
func (r *ReportRepository) Histogram(ctx context.Context, classroomID, surveyID uint) (map[uint]map[int]int, error) {
	var rows []HistogramRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(histogramQuery), classroomID, surveyID); err != nil {
		return nil, err
	}
	out := make(map[uint]map[int]int)
	for _, row := range rows {
		h, ok := out[row.QuestionID]
		if !ok {
			h = make(map[int]int)
			out[row.QuestionID] = h
		}
		h[row.Rating] = row.Count
	}
	return out, nil
}

const respondentQuery = `
SELECT COUNT(DISTINCT sr.student_id)
FROM survey_responses sr
JOIN survey_questions sq ON sq.id = sr.survey_question_id
JOIN survey_sections ss ON ss.id = sq.section_id
WHERE sr.classroom_id = ? AND ss.survey_id = ?`

// RespondentCount = jumlah student unik yang sudah menjawab.
func (r *ReportRepository) RespondentCount(ctx context.Context, classroomID, surveyID uint) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, r.db.Rebind(respondentQuery), classroomID, surveyID)
	return n, err
}

// EnrolledCount = jumlah student terdaftar di classroom.
func (r *ReportRepository) EnrolledCount(ctx context.Context, classroomID uint) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		r.db.Rebind(`SELECT COUNT(*) FROM classroom_students WHERE classroom_id = ?`), classroomID)
	return n, err
}
