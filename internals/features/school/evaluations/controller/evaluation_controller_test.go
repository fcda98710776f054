package controller_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"echomind_backend/internals/configs"
	"echomind_backend/internals/constants"
	"echomind_backend/internals/features/school/evaluations/service"
	"echomind_backend/internals/testutil"
)

func TestEvaluationsAndAnalysis(t *testing.T) {
	env := testutil.NewEnv(t)
	prof, profToken := env.CreateUser(t, constants.RoleProfessor, "prof")
	cls := env.CreateClassroom(t, prof.ID, "Music", "MUS001")

	genPath := fmt.Sprintf("/api/classrooms-generate-ai/%d", cls.ID)
	if status, _ := env.Do(t, http.MethodPost, genPath, profToken, nil); status != http.StatusUnprocessableEntity {
		t.Fatalf("generate without evaluations: %d, want 422", status)
	}
	if status, _ := env.Do(t, http.MethodGet, fmt.Sprintf("/api/classrooms-analysis/%d", cls.ID), profToken, nil); status != http.StatusNotFound {
		t.Fatalf("analysis before generate: %d, want 404", status)
	}

	for i, rating := range []int{5, 3} {
		u, tok := env.CreateUser(t, constants.RoleStudent, fmt.Sprintf("s%d", i))
		env.Enroll(t, cls.ID, u.ID)
		status, res := env.Do(t, http.MethodPost, fmt.Sprintf("/api/classroom-students/evaluate/%d", cls.ID), tok,
			fiber.Map{"rating": rating, "comment": " great class "})
		if status != http.StatusCreated {
			t.Fatalf("evaluate: %d %s", status, res.Message)
		}
		// kirim ulang = update, bukan baris baru
		if i == 1 {
			env.Do(t, http.MethodPost, fmt.Sprintf("/api/classroom-students/evaluate/%d", cls.ID), tok, fiber.Map{"rating": 4})
		}
	}

	status, res := env.Do(t, http.MethodGet, fmt.Sprintf("/api/classrooms-evaluations/%d", cls.ID), profToken, nil)
	if status != http.StatusOK {
		t.Fatalf("list: %d", status)
	}
	var summary service.EvaluationSummary
	res.Decode(t, &summary)
	if summary.Count != 2 || summary.Average != 4.5 {
		t.Fatalf("summary: %+v", summary)
	}

	status, res = env.Do(t, http.MethodPost, genPath, profToken, nil)
	if status != http.StatusCreated {
		t.Fatalf("generate: %d %s", status, res.Message)
	}
	if env.Analyzer.Calls != 1 || len(env.Analyzer.Last.Evaluations) != 2 || env.Analyzer.Last.ClassroomName != "Music" {
		t.Fatalf("analyzer input: %+v", env.Analyzer.Last)
	}

	status, _ = env.Do(t, http.MethodGet, fmt.Sprintf("/api/classrooms-analysis/%d", cls.ID), profToken, nil)
	if status != http.StatusOK {
		t.Fatalf("latest analysis: %d", status)
	}

	env.Analyzer.Err = errors.New("boom")
	if status, _ := env.Do(t, http.MethodPost, genPath, profToken, nil); status != http.StatusBadGateway {
		t.Fatalf("analyzer failure: %d, want 502", status)
	}
	env.Analyzer.Err = service.ErrAnalyzerDisabled
	if status, _ := env.Do(t, http.MethodPost, genPath, profToken, nil); status != http.StatusServiceUnavailable {
		t.Fatalf("analyzer disabled: %d, want 503", status)
	}
}

// Analisis AI tidak boleh terpotong deadline request biasa.
func TestGenerateAIUsesAnalysisDeadline(t *testing.T) {
	env := testutil.NewEnv(t)
	prof, profToken := env.CreateUser(t, constants.RoleProfessor, "prof")
	cls := env.CreateClassroom(t, prof.ID, "Music", "MUS001")
	u, tok := env.CreateUser(t, constants.RoleStudent, "s1")
	env.Enroll(t, cls.ID, u.ID)
	if status, res := env.Do(t, http.MethodPost, fmt.Sprintf("/api/classroom-students/evaluate/%d", cls.ID), tok,
		fiber.Map{"rating": 5}); status != http.StatusCreated {
		t.Fatalf("evaluate: %d %s", status, res.Message)
	}

	status, res := env.Do(t, http.MethodPost, fmt.Sprintf("/api/classrooms-generate-ai/%d", cls.ID), profToken, nil)
	if status != http.StatusCreated {
		t.Fatalf("generate: %d %s", status, res.Message)
	}
	got := env.Analyzer.Remaining
	if got <= configs.RequestTimeout || got > configs.AnalysisTimeout {
		t.Fatalf("analyzer deadline %v, want within (%v, %v]", got, configs.RequestTimeout, configs.AnalysisTimeout)
	}
}

func TestEvaluateRequiresEnrollment(t *testing.T) {
	env := testutil.NewEnv(t)
	prof, _ := env.CreateUser(t, constants.RoleProfessor, "prof")
	_, tok := env.CreateUser(t, constants.RoleStudent, "stranger")
	cls := env.CreateClassroom(t, prof.ID, "Drama", "DRA001")

	status, _ := env.Do(t, http.MethodPost, fmt.Sprintf("/api/classroom-students/evaluate/%d", cls.ID), tok, fiber.Map{"rating": 5})
	if status != http.StatusForbidden {
		t.Fatalf("not enrolled: %d, want 403", status)
	}
}
