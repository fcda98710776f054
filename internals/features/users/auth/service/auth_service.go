package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	"echomind_backend/internals/features/users/auth/dto"
	authHelper "echomind_backend/internals/features/users/auth/helper"
	authRepo "echomind_backend/internals/features/users/auth/repository"
	userModel "echomind_backend/internals/features/users/user/model"
	helpers "echomind_backend/internals/helpers"
)

/* ==========================
   REGISTER (student)
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = authHelper.NormalizeEmail(req.Email)
	req.UserName = strings.TrimSpace(req.UserName)
	if ok, err := helpers.ValidateStruct(c, helpers.Validator(), &req); !ok {
		return err
	}
	if err := authHelper.ValidatePasswordStrength(req.Password); err != nil {
		return helpers.JsonValidationError(c, err.Error(), map[string][]string{"password": {err.Error()}})
	}

	ctx := c.UserContext()
	exists, err := authRepo.EmailExists(ctx, db, req.Email)
	if err != nil {
		return helpers.JsonFault(c, err)
	}
	if exists {
		return helpers.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName:    req.UserName,
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    hash,
		Role:        constants.RoleStudent,
		InstituteID: req.InstituteID,
		IsActive:    true,
	}
	if err := authRepo.CreateUser(ctx, db, &user); err != nil {
		return helpers.JsonFault(c, err)
	}

	log.WithField("user_id", user.ID).Info("student registered")
	return helpers.JsonCreated(c, "Registration successful", dto.ToUserResponse(user))
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Identifier = strings.TrimSpace(req.Identifier)
	if ok, err := helpers.ValidateStruct(c, helpers.Validator(), &req); !ok {
		return err
	}

	user, err := authRepo.FindUserByEmailOrUsername(c.UserContext(), db, authHelper.NormalizeEmail(req.Identifier))
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) && !strings.Contains(req.Identifier, "@") {
		// username bersifat case-sensitive
		user, err = authRepo.FindUserByEmailOrUsername(c.UserContext(), db, req.Identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helpers.JsonFault(c, err)
	}
	if err := authHelper.CheckPasswordHash(user.Password, req.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	token, exp, err := IssueAccessToken(*user)
	if err != nil {
		return helpers.JsonFault(c, err)
	}

	return helpers.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp.Unix(),
		User:        dto.ToUserResponse(*user),
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken, _ := c.Locals(constants.LocalAccessToken).(string)
	if accessToken == "" {
		log.Info("logout tanpa access token; idempotent")
		return helpers.JsonOK(c, "Logout successful", nil)
	}

	ttl := resolveBlacklistTTL(accessToken)
	if err := authRepo.BlacklistToken(c.UserContext(), db, accessToken, ttl); err != nil {
		helpers.LogError(c, "failed to blacklist token", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return helpers.JsonOK(c, "Logout successful", nil)
}

/* ==========================
   CHANGE PASSWORD
========================== */

// ChangePassword mengganti password user yang login; token aktif tetap berlaku.
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonFault(c, err)
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ok, err := helpers.ValidateStruct(c, helpers.Validator(), &req); !ok {
		return err
	}
	if err := authHelper.ValidatePasswordStrength(req.NewPassword); err != nil {
		return helpers.JsonValidationError(c, err.Error(), map[string][]string{"new_password": {err.Error()}})
	}

	ctx := c.UserContext()
	user, err := authRepo.FindUserByID(ctx, db, userID)
	if err != nil {
		return helpers.JsonFault(c, err)
	}
	if err := authHelper.CheckPasswordHash(user.Password, req.OldPassword); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Old password is incorrect")
	}
	hash, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	if err := authRepo.UpdatePassword(ctx, db, userID, hash); err != nil {
		return helpers.JsonFault(c, err)
	}
	log.WithField("user_id", userID).Info("password changed")
	return helpers.JsonUpdated(c, "Password updated", nil)
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	user, err := authRepo.FindUserByID(c.UserContext(), db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helpers.JsonFault(c, err)
	}
	return helpers.JsonOK(c, "OK", dto.ToUserResponse(*user))
}
