package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"echomind_backend/internals/configs"
)

var DB *gorm.DB

// dsn: statement_timeout sedikit di bawah timeout request supaya query
// yang macet dibatalkan Postgres sebelum context HTTP habis.
func dsn() string {
	stmtTimeout := configs.RequestTimeout - time.Second
	if stmtTimeout < time.Second {
		stmtTimeout = time.Second
	}
	q := url.Values{}
	q.Set("sslmode", configs.GetEnv("DB_SSLMODE", "require"))
	q.Set("application_name", "echomind")
	q.Set("options", fmt.Sprintf("-c statement_timeout=%d", stmtTimeout.Milliseconds()))

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(configs.GetEnv("DB_USER"), configs.GetEnv("DB_PASSWORD")),
		Host:     configs.GetEnv("DB_HOST", "localhost") + ":" + configs.GetEnv("DB_PORT", "5432"),
		Path:     "/" + configs.GetEnv("DB_NAME", "echomind"),
		RawQuery: q.Encode(),
	}
	return u.String()
}

func ConnectDB() {
	log.Info("🔌 Koneksi ke PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn(),
		PreferSimpleProtocol: true, // PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Info("✅ DB connected.")
}

// TunePool: DB_MAX_OPEN_CONNS / DB_MAX_IDLE_CONNS, default 20/10.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Warnf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(time.Minute)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUpQueries membuka koneksi pertama di background.
func WarmUpQueries() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := PingContext(ctx, DB); err != nil {
			log.Warnf("warm-up ping err: %v", err)
		}
	}()
}

func Ping(db *gorm.DB) error {
	return PingContext(context.Background(), db)
}

func PingContext(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("db belum diinisialisasi")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
