package controller_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"echomind_backend/internals/constants"
	dto "echomind_backend/internals/features/users/auth/dto"
	userModel "echomind_backend/internals/features/users/user/model"
	"echomind_backend/internals/testutil"
)

func TestRegisterAndLogin(t *testing.T) {
	env := testutil.NewEnv(t)

	status, res := env.Do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"user_name": "budi",
		"email":     "Budi@Example.com",
		"password":  "rahasia123",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: %d %s", status, res.Message)
	}
	var user dto.UserResponse
	res.Decode(t, &user)
	if user.Role != constants.RoleStudent || user.Email != "budi@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	status, _ = env.Do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"user_name": "budi2",
		"email":     "budi@example.com",
		"password":  "rahasia123",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate email: %d, want 409", status)
	}

	status, _ = env.Do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"identifier": "budi@example.com", "password": "salah12345"})
	if status != http.StatusUnauthorized {
		t.Fatalf("wrong password: %d, want 401", status)
	}

	status, res = env.Do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"identifier": "budi", "password": "rahasia123"})
	if status != http.StatusOK {
		t.Fatalf("login by username: %d %s", status, res.Message)
	}
	var login dto.LoginResponse
	res.Decode(t, &login)
	if login.AccessToken == "" || login.User.UserName != "budi" {
		t.Fatalf("unexpected login response: %+v", login)
	}

	status, res = env.Do(t, http.MethodGet, "/api/auth/me", login.AccessToken, nil)
	if status != http.StatusOK {
		t.Fatalf("me: %d", status)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	env := testutil.NewEnv(t)
	status, res := env.Do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"user_name": "lemah",
		"email":     "lemah@example.com",
		"password":  "abcdefgh",
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("weak password: %d, want 422", status)
	}
	if _, ok := res.Errors["password"]; !ok {
		t.Fatalf("expected password field error, got %v", res.Errors)
	}
}

func TestLogoutBlacklistsToken(t *testing.T) {
	env := testutil.NewEnv(t)
	_, token := env.CreateUser(t, constants.RoleStudent, "siti")

	if status, _ := env.Do(t, http.MethodGet, "/api/auth/me", token, nil); status != http.StatusOK {
		t.Fatalf("me before logout: %d", status)
	}
	if status, _ := env.Do(t, http.MethodPost, "/api/auth/logout", token, nil); status != http.StatusOK {
		t.Fatalf("logout: %d", status)
	}

	status, res := env.Do(t, http.MethodGet, "/api/auth/me", token, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("blacklisted token: %d, want 401", status)
	}
	if res.Success || res.Message == "" {
		t.Fatalf("401 must use the error envelope: %+v", res)
	}
}

func TestInactiveUserRejected(t *testing.T) {
	env := testutil.NewEnv(t)
	u, token := env.CreateUser(t, constants.RoleProfessor, "nonaktif")
	env.DB.Model(&userModel.UserModel{}).Where("id = ?", u.ID).Update("is_active", false)

	if status, _ := env.Do(t, http.MethodGet, "/api/auth/me", token, nil); status != http.StatusForbidden {
		t.Fatalf("inactive user: %d, want 403", status)
	}
	status, _ := env.Do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"identifier": u.Email, "password": testutil.DefaultPassword})
	if status != http.StatusForbidden {
		t.Fatalf("inactive login: %d, want 403", status)
	}
}

func TestChangePassword(t *testing.T) {
	env := testutil.NewEnv(t)
	u, token := env.CreateUser(t, constants.RoleStudent, "rani")

	status, _ := env.Do(t, http.MethodPost, "/api/auth/change-password", token, fiber.Map{
		"old_password": "bukan-ini1", "new_password": "baru12345",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("wrong old password: %d, want 400", status)
	}

	status, _ = env.Do(t, http.MethodPost, "/api/auth/change-password", token, fiber.Map{
		"old_password": testutil.DefaultPassword, "new_password": "abcdefghij",
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("weak new password: %d, want 422", status)
	}

	status, res := env.Do(t, http.MethodPost, "/api/auth/change-password", token, fiber.Map{
		"old_password": testutil.DefaultPassword, "new_password": "baru12345",
	})
	if status != http.StatusOK {
		t.Fatalf("change password: %d %s", status, res.Message)
	}

	status, _ = env.Do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"identifier": u.Email, "password": testutil.DefaultPassword})
	if status != http.StatusUnauthorized {
		t.Fatalf("old password still accepted: %d", status)
	}
	status, _ = env.Do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{"identifier": u.Email, "password": "baru12345"})
	if status != http.StatusOK {
		t.Fatalf("login with new password: %d", status)
	}
}
