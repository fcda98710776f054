// internals/features/surveys/reports/service/report_service.go
package service

import (
	"context"

	"gorm.io/gorm"

	classroomModel "echomind_backend/internals/features/school/classrooms/model"
	dto "echomind_backend/internals/features/surveys/reports/dto"
	"echomind_backend/internals/features/surveys/reports/repository"
	surveyService "echomind_backend/internals/features/surveys/surveys/service"
	"echomind_backend/internals/helpers/stats"
)

type ReportService struct {
	DB     *gorm.DB
	Repo   *repository.ReportRepository
	Grader *QualityGrader
}

func NewReportService(db *gorm.DB, repo *repository.ReportRepository, grader *QualityGrader) *ReportService {
	if grader == nil {
		grader = MustDefaultGrader()
	}
	return &ReportService{DB: db, Repo: repo, Grader: grader}
}

// BuildReport menyusun report survey untuk classroom.
// Classroom tanpa survey → Survey & Stats nil (bukan error).
func (s *ReportService) BuildReport(ctx context.Context, cls *classroomModel.ClassroomModel) (*dto.SurveyReport, error) {
	report := &dto.SurveyReport{
		ClassroomName: cls.Name,
		ClassroomID:   cls.ID,
	}

	enrolled, err := s.Repo.EnrolledCount(ctx, cls.ID)
	if err != nil {
		return nil, err
	}
	report.EnrolledStudents = enrolled

	if cls.SurveyID == nil {
		return report, nil
	}

	tree, err := surveyService.LoadTree(ctx, s.DB, *cls.SurveyID)
	if err != nil {
		return nil, err
	}
	hist, err := s.Repo.Histogram(ctx, cls.ID, tree.ID)
	if err != nil {
		return nil, err
	}
	respondents, err := s.Repo.RespondentCount(ctx, cls.ID, tree.ID)
	if err != nil {
		return nil, err
	}

	body := &dto.SurveyReportBody{
		ID:       tree.ID,
		Title:    tree.Title,
		Sections: make([]dto.SectionReport, 0, len(tree.Sections)),
	}
	totalQuestions := 0
	sectionAvgs := make([]float64, 0, len(tree.Sections))

	for _, sec := range tree.Sections {
		sr := dto.SectionReport{
			ID:        sec.ID,
			Title:     sec.Title,
			Questions: make([]dto.QuestionReport, 0, len(sec.Questions)),
		}
		qAvgs := make([]float64, 0, len(sec.Questions))
		for _, q := range sec.Questions {
			h := stats.Histogram(hist[q.ID])
			if h == nil {
				h = stats.Histogram{}
			}
			avg := stats.CalcAverage(h)
			qAvgs = append(qAvgs, avg)
			sr.Questions = append(sr.Questions, dto.QuestionReport{
				ID:      q.ID,
				Text:    q.QuestionText,
				Ratings: h,
				Average: avg,
				Total:   h.Total(),
				Quality: s.Grader.Grade(avg),
			})
		}
		sr.Average = stats.SectionAverage(qAvgs)
		sectionAvgs = append(sectionAvgs, sr.Average)
		totalQuestions += len(sec.Questions)
		body.Sections = append(body.Sections, sr)
	}

	overall := stats.OverallAverage(sectionAvgs)
	report.Survey = body
	report.TotalRespondents = respondents
	report.CompletionRate = completionRate(respondents, enrolled)
	report.Stats = &dto.SummaryStats{
		TotalQuestions: totalQuestions,
		OverallAverage: overall,
		OverallQuality: s.Grader.Grade(overall),
		Sections:       len(body.Sections),
	}
	return report, nil
}

// completionRate dalam persen (0..100), 2 desimal.
func completionRate(respondents, enrolled int) float64 {
	if enrolled == 0 {
		return 0
	}
	return stats.Round2(float64(respondents) * 100 / float64(enrolled))
}
