package controller_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"

	"echomind_backend/internals/constants"
	dto "echomind_backend/internals/features/surveys/assignments/dto"
	"echomind_backend/internals/testutil"
)

func TestAssignSurveyOnce(t *testing.T) {
	env := testutil.NewEnv(t)
	prof, profToken := env.CreateUser(t, constants.RoleProfessor, "prof")
	first := env.CreateSurvey(t, "First", "S", "Q1")
	second := env.CreateSurvey(t, "Second", "S", "Q1")
	cls := env.CreateClassroom(t, prof.ID, "Physics", "PHY001")

	checkPath := fmt.Sprintf("/api/classrooms/%d/check-survey", cls.ID)
	assignPath := fmt.Sprintf("/api/surveys-assign/%d", cls.ID)

	status, res := env.Do(t, http.MethodGet, checkPath, profToken, nil)
	if status != http.StatusOK {
		t.Fatalf("check-survey: %d %s", status, res.Message)
	}
	var check dto.CheckSurveyResponse
	res.Decode(t, &check)
	if check.HasSurvey || check.Survey != nil {
		t.Fatalf("fresh classroom should have no survey: %+v", check)
	}

	status, res = env.Do(t, http.MethodPost, assignPath, profToken, fiber.Map{"survey_id": first.ID})
	if status != http.StatusOK {
		t.Fatalf("first assign: %d %s", status, res.Message)
	}

	status, _ = env.Do(t, http.MethodPost, assignPath, profToken, fiber.Map{"survey_id": second.ID})
	if status != http.StatusConflict {
		t.Fatalf("second assign: %d, want 409", status)
	}

	status, res = env.Do(t, http.MethodGet, checkPath, profToken, nil)
	if status != http.StatusOK {
		t.Fatalf("re-check: %d", status)
	}
	check = dto.CheckSurveyResponse{}
	res.Decode(t, &check)
	if !check.HasSurvey || check.Survey == nil || check.Survey.ID != first.ID {
		t.Fatalf("classroom should stay bound to first survey: %+v", check)
	}
}

func TestAssignSurveyConcurrent(t *testing.T) {
	env := testutil.NewEnv(t)
	prof, profToken := env.CreateUser(t, constants.RoleProfessor, "prof")
	cls := env.CreateClassroom(t, prof.ID, "Chem", "CHE001")
	surveys := []uint{
		env.CreateSurvey(t, "A", "S", "Q").ID,
		env.CreateSurvey(t, "B", "S", "Q").ID,
		env.CreateSurvey(t, "C", "S", "Q").ID,
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		statuses []int
	)
	for _, id := range surveys {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			status, _ := env.Do(t, http.MethodPost, fmt.Sprintf("/api/surveys-assign/%d", cls.ID), profToken, fiber.Map{"survey_id": id})
			mu.Lock()
			statuses = append(statuses, status)
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	ok := 0
	for _, s := range statuses {
		switch s {
		case http.StatusOK:
			ok++
		case http.StatusConflict:
		default:
			t.Fatalf("unexpected status %d", s)
		}
	}
	if ok != 1 {
		t.Fatalf("exactly one assignment must win, got %d (%v)", ok, statuses)
	}
}

func TestAssignSurveyAccess(t *testing.T) {
	env := testutil.NewEnv(t)
	owner, _ := env.CreateUser(t, constants.RoleProfessor, "owner")
	_, otherToken := env.CreateUser(t, constants.RoleProfessor, "other")
	_, adminToken := env.Admin(t)
	survey := env.CreateSurvey(t, "S", "S", "Q")
	cls := env.CreateClassroom(t, owner.ID, "Bio", "BIO001")

	status, _ := env.Do(t, http.MethodPost, fmt.Sprintf("/api/surveys-assign/%d", cls.ID), otherToken, fiber.Map{"survey_id": survey.ID})
	if status != http.StatusForbidden {
		t.Fatalf("non-owner assign: %d, want 403", status)
	}
	status, _ = env.Do(t, http.MethodPost, fmt.Sprintf("/api/surveys-assign/%d", cls.ID), adminToken, fiber.Map{"survey_id": survey.ID})
	if status != http.StatusForbidden {
		t.Fatalf("admin assign: %d, want 403 (professor only)", status)
	}
	status, _ = env.Do(t, http.MethodGet, fmt.Sprintf("/api/classrooms/%d/check-survey", cls.ID), adminToken, nil)
	if status != http.StatusOK {
		t.Fatalf("admin check-survey: %d", status)
	}
	status, _ = env.Do(t, http.MethodPost, "/api/surveys-assign/0", otherToken, fiber.Map{"survey_id": survey.ID})
	if status != http.StatusBadRequest {
		t.Fatalf("zero classroom id: %d, want 400", status)
	}
}
