package database

import (
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var dbMigrations embed.FS

// RunMigrations menjalankan migrasi SQL ter-embed (golang-migrate) ke Postgres.
func RunMigrations(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	src, err := iofs.New(dbMigrations, "migrations")
	if err != nil {
		return err
	}

	dst, err := migratePostgres.WithInstance(sqlDB, &migratePostgres.Config{
		MigrationsTable: "echomind_schema_migrations",
	})
	if err != nil {
		return err
	}

	migrator, err := migrate.NewWithInstance("iofs", src, "postgres", dst)
	if err != nil {
		return err
	}

	err = migrator.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info("✅ Schema sudah up to date")
	case err != nil:
		return err
	default:
		v, _, _ := migrator.Version()
		log.Infof("✅ Migrasi selesai, versi %d", v)
	}
	return nil
}
