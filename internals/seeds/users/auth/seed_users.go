package user

import (
	"os"
	"strings"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"echomind_backend/internals/constants"
	authHelper "echomind_backend/internals/features/users/auth/helper"
	"echomind_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUser insert satu user bila email belum ada. Return true bila baru dibuat.
func SeedUser(db *gorm.DB, data UserSeed) (bool, error) {
	email := authHelper.NormalizeEmail(data.Email)
	var n int64
	if err := db.Model(&model.UserModel{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		log.Debugf("ℹ️ User dengan email '%s' sudah ada, dilewati.", email)
		return false, nil
	}

	role := strings.ToLower(strings.TrimSpace(data.Role))
	if !constants.IsValidRole(role) {
		role = constants.RoleStudent
	}

	// 🔐 Hash password sebelum disimpan
	hashedPassword, err := authHelper.HashPassword(data.Password)
	if err != nil {
		return false, err
	}

	newUser := model.UserModel{
		UserName: data.UserName,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
		IsActive: true,
	}
	if fn := strings.TrimSpace(data.FullName); fn != "" {
		newUser.FullName = &fn
	}
	if err := db.Create(&newUser).Error; err != nil {
		return false, err
	}
	log.Infof("✅ Berhasil insert user '%s' (%s)", email, role)
	return true, nil
}

// SeedAdmin dari SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD (dilewati bila kosong).
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := SeedUser(db, UserSeed{
		UserName: "admin",
		Email:    email,
		Password: password,
		Role:     constants.RoleAdmin,
	})
	return err
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) error {
	log.Info("📥 Membaca file user: ", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return err
	}

	for _, data := range inputs {
		if _, err := SeedUser(db, data); err != nil {
			log.WithError(err).Errorf("❌ Gagal insert user '%s'", data.Email)
		}
	}
	return nil
}
