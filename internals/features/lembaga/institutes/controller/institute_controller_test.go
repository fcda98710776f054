package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"echomind_backend/internals/constants"
	"echomind_backend/internals/features/lembaga/institutes/dto"
	userModel "echomind_backend/internals/features/users/user/model"
	"echomind_backend/internals/testutil"
)

func TestInstituteCRUD(t *testing.T) {
	env := testutil.NewEnv(t)
	_, admin := env.Admin(t)

	status, res := env.Do(t, http.MethodPost, "/api/institutes", admin, fiber.Map{"name": "  Universitas Nusantara "})
	if status != http.StatusCreated {
		t.Fatalf("create: %d %s", status, res.Message)
	}
	var created struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	res.Decode(t, &created)
	if created.Name != "Universitas Nusantara" {
		t.Fatalf("name not trimmed: %q", created.Name)
	}

	status, _ = env.Do(t, http.MethodPost, "/api/institutes", admin, fiber.Map{"name": "X", "contact_email": "bukan-email"})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("bad email: %d, want 422", status)
	}

	prof, _ := env.CreateUser(t, constants.RoleProfessor, "dosen")
	env.DB.Model(&userModel.UserModel{}).Where("id = ?", prof.ID).Update("institute_id", created.ID)

	status, res = env.Do(t, http.MethodGet, "/api/institutes", admin, nil)
	if status != http.StatusOK {
		t.Fatalf("list: %d", status)
	}
	var items []dto.InstituteItem
	res.Decode(t, &items)
	if len(items) != 1 || items[0].ProfessorCount != 1 || items[0].StudentCount != 0 {
		t.Fatalf("unexpected list: %+v", items)
	}

	path := fmt.Sprintf("/api/institutes/%d", created.ID)
	status, _ = env.Do(t, http.MethodPut, path, admin, fiber.Map{"name": "UNU"})
	if status != http.StatusOK {
		t.Fatalf("update: %d", status)
	}
	status, _ = env.Do(t, http.MethodDelete, path, admin, nil)
	if status != http.StatusOK {
		t.Fatalf("delete: %d", status)
	}
	status, _ = env.Do(t, http.MethodDelete, path, admin, nil)
	if status != http.StatusNotFound {
		t.Fatalf("second delete: %d, want 404", status)
	}
	status, _ = env.Do(t, http.MethodPut, "/api/institutes/9999", admin, fiber.Map{"name": "Y"})
	if status != http.StatusNotFound {
		t.Fatalf("update missing: %d, want 404", status)
	}
}

func TestInstitutesAdminOnly(t *testing.T) {
	env := testutil.NewEnv(t)
	_, prof := env.CreateUser(t, constants.RoleProfessor, "dosen")

	if status, _ := env.Do(t, http.MethodGet, "/api/institutes", prof, nil); status != http.StatusForbidden {
		t.Fatalf("professor list: %d, want 403", status)
	}
	if status, _ := env.Do(t, http.MethodGet, "/api/institutes", "", nil); status != http.StatusUnauthorized {
		t.Fatalf("anonymous list: %d, want 401", status)
	}
}
