package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"echomind_backend/internals/constants"
	dto "echomind_backend/internals/features/surveys/reports/dto"
	"echomind_backend/internals/testutil"
)

func TestSurveyReport(t *testing.T) {
	env := testutil.NewEnv(t)
	prof, profToken := env.CreateUser(t, constants.RoleProfessor, "prof")
	survey := env.CreateSurvey(t, "Eval", "Teaching", "Clarity?", "Pace?")
	cls := env.CreateClassroom(t, prof.ID, "Art", "ART001")
	env.AssignSurvey(t, cls.ID, survey.ID)
	q1, q2 := survey.Sections[0].Questions[0].ID, survey.Sections[0].Questions[1].ID

	submit := func(name string, r1, r2 int) {
		u, tok := env.CreateUser(t, constants.RoleStudent, name)
		env.Enroll(t, cls.ID, u.ID)
		status, res := env.Do(t, http.MethodPost, "/api/survey-responses", tok, fiber.Map{
			"classroom_id": cls.ID,
			"responses": []fiber.Map{
				{"survey_question_id": q1, "rating": r1},
				{"survey_question_id": q2, "rating": r2},
			},
		})
		if status != http.StatusCreated {
			t.Fatalf("submit %s: %d %s", name, status, res.Message)
		}
	}
	submit("s1", 5, 2)
	submit("s2", 5, 4)
	submit("s3", 2, 3)
	u, _ := env.CreateUser(t, constants.RoleStudent, "silent")
	env.Enroll(t, cls.ID, u.ID)

	status, res := env.Do(t, http.MethodGet, fmt.Sprintf("/api/classrooms/%d/survey-report", cls.ID), profToken, nil)
	if status != http.StatusOK {
		t.Fatalf("report: %d %s", status, res.Message)
	}
	var report dto.SurveyReport
	res.Decode(t, &report)

	if report.ClassroomName != "Art" || report.ClassroomID != cls.ID {
		t.Fatalf("classroom header wrong: %+v", report)
	}
	if report.TotalRespondents != 3 || report.EnrolledStudents != 4 || report.CompletionRate != 75 {
		t.Fatalf("counts wrong: respondents=%d enrolled=%d rate=%v",
			report.TotalRespondents, report.EnrolledStudents, report.CompletionRate)
	}
	if report.Survey == nil || len(report.Survey.Sections) != 1 {
		t.Fatalf("survey body missing: %+v", report.Survey)
	}

	sec := report.Survey.Sections[0]
	first, second := sec.Questions[0], sec.Questions[1]
	if first.Ratings[5] != 2 || first.Ratings[2] != 1 || first.Total != 3 {
		t.Fatalf("q1 histogram: %v", first.Ratings)
	}
	if first.Average != 4 || second.Average != 3 {
		t.Fatalf("averages: q1=%v q2=%v", first.Average, second.Average)
	}
	if sec.Average != 3.5 || report.Stats.OverallAverage != 3.5 || report.Stats.TotalQuestions != 2 {
		t.Fatalf("section/overall: %v / %+v", sec.Average, report.Stats)
	}
	if first.Quality == "" || report.Stats.OverallQuality == "" {
		t.Fatalf("quality labels missing")
	}
}

func TestSurveyReportWithoutSurvey(t *testing.T) {
	env := testutil.NewEnv(t)
	prof, profToken := env.CreateUser(t, constants.RoleProfessor, "prof")
	_, otherToken := env.CreateUser(t, constants.RoleProfessor, "other")
	cls := env.CreateClassroom(t, prof.ID, "Empty", "EMP001")

	status, res := env.Do(t, http.MethodGet, fmt.Sprintf("/api/classrooms/%d/survey-report", cls.ID), profToken, nil)
	if status != http.StatusOK {
		t.Fatalf("report: %d", status)
	}
	var report dto.SurveyReport
	res.Decode(t, &report)
	if report.Survey != nil || report.Stats != nil {
		t.Fatalf("unassigned classroom should report null survey: %+v", report)
	}

	status, _ = env.Do(t, http.MethodGet, fmt.Sprintf("/api/classrooms/%d/survey-report", cls.ID), otherToken, nil)
	if status != http.StatusForbidden {
		t.Fatalf("foreign professor: %d, want 403", status)
	}
}
