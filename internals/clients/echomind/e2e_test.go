package echomind_test

import (
	"context"
	"testing"

	"echomind_backend/internals/clients/echomind"
	"echomind_backend/internals/constants"
	classroomModel "echomind_backend/internals/features/school/classrooms/model"
)

func TestSurveyLifecycleEndToEnd(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	admin, _ := h.clientFor(t, constants.RoleAdmin, "admin")
	prof, profUser := h.clientFor(t, constants.RoleProfessor, "prof")
	student, studentUser := h.clientFor(t, constants.RoleStudent, "student")

	// classroom dengan id 42
	cls := classroomModel.ClassroomModel{ID: 42, Name: "Course", Code: "CRS042", ProfessorID: profUser.ID}
	if err := h.env.DB.Create(&cls).Error; err != nil {
		t.Fatalf("create classroom: %v", err)
	}
	h.env.Enroll(t, 42, studentUser.ID)

	// admin: survey → section → question
	survey, err := admin.CreateSurvey(ctx, "Course Eval", nil)
	if err != nil {
		t.Fatalf("create survey: %v", err)
	}
	ed := echomind.NewSurveyEditor(admin, survey.ID)
	if _, err := ed.FetchSections(ctx); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if err := ed.OpenCreateSection(); err != nil {
		t.Fatal(err)
	}
	if err := ed.SubmitSection(ctx, echomind.SectionForm{Title: "Teaching"}); err != nil {
		t.Fatalf("section: %v", err)
	}
	if err := ed.OpenCreateQuestion(ed.View().Sections[0].ID); err != nil {
		t.Fatal(err)
	}
	if err := ed.SubmitQuestion(ctx, "Clarity?"); err != nil {
		t.Fatalf("question: %v", err)
	}
	questionID := ed.View().Sections[0].Questions[0].ID

	// professor: assign ke classroom 42
	if view, err := echomind.NewAssignmentPanel(prof, 42).Assign(ctx, survey.ID); err != nil || view.Kind != echomind.AssignmentBound {
		t.Fatalf("assign: %v %+v", err, view)
	}

	// student: isi rating 4
	form, err := echomind.LoadSurveyForm(ctx, student, 42)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	if form.Total() != 1 || form.Answered() != 0 {
		t.Fatalf("form: total=%d answered=%d", form.Total(), form.Answered())
	}
	if err := form.SetAnswer(questionID, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := form.Submit(ctx); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// jawaban lama ter-prepopulate saat form dibuka lagi
	again, err := echomind.LoadSurveyForm(ctx, student, 42)
	if err != nil {
		t.Fatalf("reload form: %v", err)
	}
	if r, ok := again.Answer(questionID); !ok || r != 4 {
		t.Fatalf("previous answer not restored: %d %v", r, ok)
	}

	// professor: report classroom 42
	view, err := echomind.FetchReport(ctx, prof, 42)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	q := view.Report.Survey.Sections[0].Questions[0]
	if len(q.Ratings) != 1 || q.Ratings[4] != 1 {
		t.Fatalf("ratings = %v, want {4:1}", q.Ratings)
	}
	if q.Average != 4 || view.Charts()[0].Average != 4 {
		t.Fatalf("average = %v, want 4", q.Average)
	}
	if view.Report.TotalRespondents != 1 {
		t.Fatalf("respondents = %d", view.Report.TotalRespondents)
	}
}
