package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"echomind_backend/internals/constants"
)

var (
	errNoToken      = errors.New("Unauthorized - No token provided")
	errTokenFormat  = errors.New("Unauthorized - Invalid token format")
	errTokenExpired = errors.New("Unauthorized - Token expired")
)

// AccessClaims versi typed dari klaim access token EchoMind.
type AccessClaims struct {
	UserID    uuid.UUID
	Role      string
	UserName  string
	JTI       string
	ExpiresAt time.Time
}

// bearerToken: header Authorization dulu, lalu cookie access_token.
func bearerToken(c *fiber.Ctx) (string, error) {
	raw := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if raw == "" {
		if tok := strings.TrimSpace(c.Cookies("access_token")); tok != "" {
			return tok, nil
		}
		return "", errNoToken
	}

	scheme, tok, found := strings.Cut(raw, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errTokenFormat
	}
	tok = strings.Trim(strings.TrimSpace(tok), "\"'")
	if tok == "" {
		return "", errTokenFormat
	}
	return tok, nil
}

// parseAccessClaims memvalidasi exp (dengan toleransi skew), id, dan role.
func parseAccessClaims(mc jwt.MapClaims, now time.Time, skew time.Duration) (AccessClaims, error) {
	var out AccessClaims

	exp, ok := mc["exp"].(float64)
	if !ok {
		return out, fmt.Errorf("token has no exp")
	}
	out.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	if now.After(out.ExpiresAt.Add(skew)) {
		return out, errTokenExpired
	}

	idStr, _ := mc["id"].(string)
	id, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil || id == uuid.Nil {
		return out, fmt.Errorf("invalid user id")
	}
	out.UserID = id

	out.Role, _ = mc["role"].(string)
	if !constants.IsValidRole(out.Role) {
		return out, fmt.Errorf("unknown role %q", out.Role)
	}
	out.UserName, _ = mc["user_name"].(string)
	out.JTI, _ = mc["jti"].(string)
	return out, nil
}

func (a AccessClaims) store(c *fiber.Ctx, token string) {
	c.Locals(constants.LocalUserID, a.UserID.String())
	c.Locals(constants.LocalRole, a.Role)
	c.Locals(constants.LocalUserName, a.UserName)
	c.Locals(constants.LocalTokenJTI, a.JTI)
	c.Locals(constants.LocalAccessToken, token)
}
