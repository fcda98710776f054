package auth_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"echomind_backend/internals/constants"
	"echomind_backend/internals/testutil"
)

// Semua pesan 401 dari middleware memakai prefix "Unauthorized - ".
func TestAuthMiddlewareMessages(t *testing.T) {
	env := testutil.NewEnv(t)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   uuid.NewString(),
		"role": constants.RoleStudent,
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte(testutil.JWTSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	cases := []struct {
		name  string
		token string
		want  string
	}{
		{"no token", "", "Unauthorized - No token provided"},
		{"expired", expired, "Unauthorized - Token expired"},
		{"garbage", "not-a-jwt", "Unauthorized - Token parse error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, res := env.Do(t, http.MethodGet, "/api/auth/me", tc.token, nil)
			if status != http.StatusUnauthorized {
				t.Fatalf("status %d, want 401", status)
			}
			if res.Success || res.Message != tc.want {
				t.Fatalf("message %q, want %q", res.Message, tc.want)
			}
		})
	}
}
