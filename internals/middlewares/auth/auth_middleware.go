// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"echomind_backend/internals/configs"
	authRepo "echomind_backend/internals/features/users/auth/repository"
)

const expirySkew = 30 * time.Second

// AuthMiddleware: token → blacklist → signature → klaim → user aktif → Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		ctx := c.UserContext()

		// 🚫 token yang sudah logout
		revoked, err := authRepo.IsBlacklisted(ctx, db, token)
		if err != nil {
			log.WithError(err).Error("DB error saat cek blacklist")
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if revoked {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		}

		if configs.JWTSecret == "" {
			log.Error("JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}
		mc := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true, ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
		if _, err := parser.ParseWithClaims(token, mc, func(*jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			log.WithError(err).Debug("gagal parse token")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		claims, err := parseAccessClaims(mc, time.Now().UTC(), expirySkew)
		if err != nil {
			if errors.Is(err, errTokenExpired) {
				return fiber.NewError(fiber.StatusUnauthorized, err.Error())
			}
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token claims")
		}

		user, err := authRepo.FindUserByID(ctx, db, claims.UserID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
		case err != nil:
			log.WithError(err).Error("lookup user token")
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		case !user.IsActive:
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		// role di DB lebih dipercaya daripada klaim lama
		claims.Role = user.Role
		claims.store(c, token)
		return c.Next()
	}
}
