package seeds

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"echomind_backend/internals/configs"
	surveys "echomind_backend/internals/seeds/surveys"
	users "echomind_backend/internals/seeds/users/auth"
)

func RunAllSeeds(db *gorm.DB) {
	//* User
	if err := users.SeedAdmin(db, configs.SeedAdminEmail, configs.SeedAdminPassword); err != nil {
		log.WithError(err).Error("❌ seed admin gagal")
	}

	//* Survey templates
	if _, err := surveys.SeedDefaultSurveys(db); err != nil {
		log.WithError(err).Error("❌ seed survey gagal")
	}
}
