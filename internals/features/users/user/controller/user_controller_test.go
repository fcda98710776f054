package controller_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"echomind_backend/internals/constants"
	"echomind_backend/internals/features/users/user/dto"
	"echomind_backend/internals/testutil"
)

func TestRegisterProfessorAndList(t *testing.T) {
	env := testutil.NewEnv(t)
	_, admin := env.Admin(t)

	status, res := env.Do(t, http.MethodPost, "/api/professor-register", admin, fiber.Map{
		"user_name": "pakdosen",
		"email":     "Dosen@Kampus.ac.id",
		"password":  "dosen1234",
	})
	if status != http.StatusCreated {
		t.Fatalf("register professor: %d %s", status, res.Message)
	}

	status, _ = env.Do(t, http.MethodPost, "/api/professor-register", admin, fiber.Map{
		"user_name": "pakdosen2",
		"email":     "dosen@kampus.ac.id",
		"password":  "dosen1234",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate email: %d, want 409", status)
	}

	prof, _ := env.CreateUser(t, constants.RoleProfessor, "budosen")
	env.CreateClassroom(t, prof.ID, "Aljabar", "ALJ001")
	env.CreateUser(t, constants.RoleStudent, "mhs")

	status, res = env.Do(t, http.MethodGet, "/api/get-professors?per_page=1", admin, nil)
	if status != http.StatusOK {
		t.Fatalf("list professors: %d %s", status, res.Message)
	}
	var page []dto.UserItem
	res.Decode(t, &page)
	if len(page) != 1 || res.Pagination == nil || res.Pagination.Total != 2 || !res.Pagination.HasNext {
		t.Fatalf("pagination: items=%d meta=%+v", len(page), res.Pagination)
	}

	status, res = env.Do(t, http.MethodGet, "/api/get-professors?q=budosen", admin, nil)
	if status != http.StatusOK {
		t.Fatalf("search: %d", status)
	}
	var found []dto.UserItem
	res.Decode(t, &found)
	if len(found) != 1 || found[0].ClassroomCount != 1 || found[0].Role != constants.RoleProfessor {
		t.Fatalf("search result: %+v", found)
	}

	if status, _ := env.Do(t, http.MethodGet, "/api/get-one-prof/"+prof.ID.String(), admin, nil); status != http.StatusOK {
		t.Fatalf("get professor: %d", status)
	}
	// role lain → 404
	if status, _ := env.Do(t, http.MethodGet, "/api/get-student/"+prof.ID.String(), admin, nil); status != http.StatusNotFound {
		t.Fatalf("professor as student: %d, want 404", status)
	}
	if status, _ := env.Do(t, http.MethodGet, "/api/get-student/bukan-uuid", admin, nil); status != http.StatusBadRequest {
		t.Fatalf("invalid id: %d, want 400", status)
	}
}

func TestUserAdminRoutesRejectOthers(t *testing.T) {
	env := testutil.NewEnv(t)
	_, student := env.CreateUser(t, constants.RoleStudent, "mhs")

	status, _ := env.Do(t, http.MethodPost, "/api/professor-register", student, fiber.Map{
		"user_name": "palsu", "email": "palsu@x.id", "password": "palsu1234",
	})
	if status != http.StatusForbidden {
		t.Fatalf("student registering professor: %d, want 403", status)
	}
}
