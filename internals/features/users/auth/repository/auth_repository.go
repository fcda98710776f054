// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "echomind_backend/internals/features/users/auth/model"
	userModel "echomind_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(ctx context.Context, db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).
		Where("email = ? OR user_name = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func EmailExists(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func CreateUser(ctx context.Context, db *gorm.DB, user *userModel.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

func UpdatePassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ?", userID).Update("password", hash).Error
}

/* ====================== BLACKLIST ====================== */

// BlacklistToken idempotent: token yang sama tidak diinsert dua kali.
func BlacklistToken(ctx context.Context, db *gorm.DB, token string, ttl time.Duration) error {
	if token == "" {
		return errors.New("empty token")
	}
	row := authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&row).Error
}

// IsBlacklisted true kalau token sudah di-logout.
func IsBlacklisted(ctx context.Context, db *gorm.DB, token string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&authModel.TokenBlacklist{}).
		Where("token = ?", token).Limit(1).Count(&n).Error
	return n > 0, err
}

// PurgeExpiredBlacklist menghapus (hard delete) entri yang expired sebelum batas.
func PurgeExpiredBlacklist(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	res := db.WithContext(ctx).Unscoped().
		Where("expired_at < ?", before).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
