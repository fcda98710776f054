package echomind_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"echomind_backend/internals/clients/echomind"
	"echomind_backend/internals/constants"
	"echomind_backend/internals/testutil"
)

type harness struct {
	env     *testutil.Env
	baseURL string
}

func newHarness(t *testing.T) harness {
	t.Helper()
	env := testutil.NewEnv(t)
	return harness{env: env, baseURL: env.Serve(t)}
}

func (h harness) clientFor(t *testing.T, role, name string) (*echomind.Client, echomind.User) {
	t.Helper()
	u, token := h.env.CreateUser(t, role, name)
	user := echomind.User{ID: u.ID, UserName: u.UserName, Email: u.Email, Role: u.Role}
	return echomind.New(h.baseURL, echomind.WithAuth(echomind.StaticAuth{AccessToken: token, User: &user})), user
}

func TestFetchSectionsNotFoundVsEmpty(t *testing.T) {
	h := newHarness(t)
	admin, _ := h.clientFor(t, constants.RoleAdmin, "admin")
	ctx := context.Background()

	survey, err := admin.CreateSurvey(ctx, "Blank", nil)
	if err != nil {
		t.Fatalf("create survey: %v", err)
	}

	empty, err := echomind.NewSurveyEditor(admin, survey.ID).FetchSections(ctx)
	if err != nil {
		t.Fatalf("fetch empty: %v", err)
	}
	missing, err := echomind.NewSurveyEditor(admin, 9999).FetchSections(ctx)
	if err != nil {
		t.Fatalf("fetch missing: %v", err)
	}

	if empty.State != echomind.SectionsEmpty || missing.State != echomind.SectionsNotFound {
		t.Fatalf("states: empty=%s missing=%s", empty.State, missing.State)
	}
	if empty.State == missing.State {
		t.Fatal("404 and empty list must not share a state")
	}

	if _, err := echomind.NewSurveyEditor(admin, 0).FetchSections(ctx); !errors.Is(err, echomind.ErrMissingParam) {
		t.Fatalf("zero survey id: %v", err)
	}
}

func TestSurveyEditorDialogs(t *testing.T) {
	h := newHarness(t)
	admin, _ := h.clientFor(t, constants.RoleAdmin, "admin")
	ctx := context.Background()

	survey, err := admin.CreateSurvey(ctx, "Editor", nil)
	if err != nil {
		t.Fatalf("create survey: %v", err)
	}
	ed := echomind.NewSurveyEditor(admin, survey.ID)
	if _, err := ed.FetchSections(ctx); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if err := ed.SubmitSection(ctx, echomind.SectionForm{Title: "Orphan"}); !errors.Is(err, echomind.ErrDialogClosed) {
		t.Fatalf("submit without dialog: %v", err)
	}

	if err := ed.OpenCreateSection(); err != nil {
		t.Fatalf("open create: %v", err)
	}
	if err := ed.OpenCreateSection(); !errors.Is(err, echomind.ErrDialogPending) {
		t.Fatalf("second dialog: %v", err)
	}
	var formErr *echomind.FormError
	if err := ed.SubmitSection(ctx, echomind.SectionForm{Title: "  "}); !errors.As(err, &formErr) {
		t.Fatalf("blank title: %v", err)
	}
	if err := ed.SubmitSection(ctx, echomind.SectionForm{Title: "Teaching"}); err != nil {
		t.Fatalf("create section: %v", err)
	}
	if ed.SectionDialog().IsOpen() {
		t.Fatal("dialog should close after success")
	}

	view := ed.View()
	if view.State != echomind.SectionsLoaded || len(view.Sections) != 1 {
		t.Fatalf("tree not refetched: %+v", view)
	}
	sectionID := view.Sections[0].ID

	form, err := ed.OpenEditSection(sectionID)
	if err != nil {
		t.Fatalf("open edit: %v", err)
	}
	if form.Title != "Teaching" || !ed.SectionDialog().IsEditing(sectionID) {
		t.Fatalf("edit form not seeded: %+v", form)
	}
	form.Title = "Teaching Quality"
	if err := ed.SubmitSection(ctx, form); err != nil {
		t.Fatalf("update section: %v", err)
	}
	if got := ed.View().Sections[0].Title; got != "Teaching Quality" {
		t.Fatalf("title after update = %q", got)
	}

	if err := ed.OpenCreateQuestion(sectionID); err != nil {
		t.Fatalf("open question: %v", err)
	}
	if err := ed.SubmitQuestion(ctx, "Clarity?"); err != nil {
		t.Fatalf("create question: %v", err)
	}
	questionID := ed.View().Sections[0].Questions[0].ID

	if err := ed.ConfirmDeleteQuestion(ctx, questionID); !errors.Is(err, echomind.ErrNotConfirmed) {
		t.Fatalf("delete without confirmation: %v", err)
	}
	if err := ed.OpenDeleteQuestion(questionID); err != nil {
		t.Fatalf("open delete: %v", err)
	}
	if err := ed.ConfirmDeleteQuestion(ctx, questionID+1); !errors.Is(err, echomind.ErrNotConfirmed) {
		t.Fatalf("confirm for other row: %v", err)
	}
	if err := ed.ConfirmDeleteQuestion(ctx, questionID); err != nil {
		t.Fatalf("delete question: %v", err)
	}
	if n := len(ed.View().Sections[0].Questions); n != 0 {
		t.Fatalf("questions after delete = %d", n)
	}

	if err := ed.OpenDeleteSection(sectionID); err != nil {
		t.Fatalf("open delete section: %v", err)
	}
	if err := ed.ConfirmDeleteSection(ctx, sectionID); err != nil {
		t.Fatalf("delete section: %v", err)
	}
	if ed.View().State != echomind.SectionsEmpty {
		t.Fatalf("state after deleting last section = %s", ed.View().State)
	}
}

func TestAssignmentPanelBranches(t *testing.T) {
	h := newHarness(t)
	prof, profUser := h.clientFor(t, constants.RoleProfessor, "prof")
	survey := h.env.CreateSurvey(t, "Midterm", "S", "Q")
	cls := h.env.CreateClassroom(t, profUser.ID, "Logic", "LOG001")
	ctx := context.Background()

	panel := echomind.NewAssignmentPanel(prof, cls.ID)
	view, err := panel.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if view.Kind != echomind.AssignmentSelector || view.Bound != nil || len(view.Options) != 1 {
		t.Fatalf("unassigned view: %+v", view)
	}

	view, err = panel.Assign(ctx, survey.ID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if view.Kind != echomind.AssignmentBound || view.Options != nil || view.Bound.ID != survey.ID {
		t.Fatalf("bound view: %+v", view)
	}

	_, err = panel.Assign(ctx, survey.ID)
	if echomind.StatusOf(err) != http.StatusConflict {
		t.Fatalf("second assign: %v", err)
	}
	var apiErr *echomind.APIError
	if !errors.As(err, &apiErr) || apiErr.Message == "" {
		t.Fatalf("conflict should carry server message: %v", err)
	}
}

func TestLoadClassroomOverview(t *testing.T) {
	h := newHarness(t)
	prof, profUser := h.clientFor(t, constants.RoleProfessor, "prof")
	other, _ := h.clientFor(t, constants.RoleProfessor, "other")
	cls := h.env.CreateClassroom(t, profUser.ID, "Stats", "STA001")
	ctx := context.Background()

	ov, err := echomind.LoadClassroomOverview(ctx, prof, cls.ID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if ov.Classroom.Name != "Stats" || ov.Evaluations.Count != 0 {
		t.Fatalf("unexpected overview: %+v", ov)
	}

	if _, err := echomind.LoadClassroomOverview(ctx, other, cls.ID); echomind.StatusOf(err) != http.StatusForbidden {
		t.Fatalf("foreign professor overview: %v", err)
	}
}

func TestClientSessionAndTimeout(t *testing.T) {
	h := newHarness(t)
	u, _ := h.env.CreateUser(t, constants.RoleStudent, "sesi")
	ctx := context.Background()

	client := echomind.New(h.baseURL)
	if _, err := client.Me(ctx); echomind.StatusOf(err) != http.StatusUnauthorized {
		t.Fatalf("anonymous me: %v", err)
	}

	sess, err := client.Login(ctx, u.Email, testutil.DefaultPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if cu, ok := sess.CurrentUser(); !ok || cu.ID != u.ID {
		t.Fatalf("current user: %+v", cu)
	}
	if _, err := client.Me(ctx); err != nil {
		t.Fatalf("me: %v", err)
	}

	token := sess.Token()
	if err := client.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sess.CurrentUser(); ok || sess.Token() != "" {
		t.Fatal("session should be cleared")
	}
	stale := echomind.New(h.baseURL, echomind.WithAuth(echomind.StaticAuth{AccessToken: token}))
	if _, err := stale.Me(ctx); echomind.StatusOf(err) != http.StatusUnauthorized {
		t.Fatalf("logged-out token: %v", err)
	}

	expired, cancel := context.WithTimeout(ctx, time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)
	if _, err := client.Me(expired); err == nil {
		t.Fatal("expected error for expired context")
	}
}
