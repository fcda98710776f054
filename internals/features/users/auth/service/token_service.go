// internals/features/users/auth/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"echomind_backend/internals/configs"
	userModel "echomind_backend/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func accessTTL() time.Duration {
	if configs.TokenTTL > 0 {
		return configs.TokenTTL
	}
	return accessTTLDefault
}

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"jti":       uuid.NewString(),
		"id":        u.ID.String(),
		"role":      u.Role,
		"user_name": u.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL()).Unix(),
	}
}

// IssueAccessToken menandatangani access token HS256 untuk user.
func IssueAccessToken(u userModel.UserModel) (string, time.Time, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", time.Time{}, err
	}
	now := nowUTC()
	claims := buildAccessClaims(u, now)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, now.Add(accessTTL()), nil
}

// resolveBlacklistTTL: sisa umur token (exp - now); fallback ke TTL default.
func resolveBlacklistTTL(accessToken string) time.Duration {
	if accessToken == "" {
		return accessTTL()
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return accessTTL()
	}
	if exp, ok := claims["exp"].(float64); ok {
		if remain := time.Until(time.Unix(int64(exp), 0)); remain > 0 {
			return remain
		}
		return time.Minute
	}
	return accessTTL()
}
