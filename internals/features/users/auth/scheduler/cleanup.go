package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"echomind_backend/internals/configs"
	authRepo "echomind_backend/internals/features/users/auth/repository"
)

// RunBlacklistCleanup menghapus entri blacklist yang sudah lewat TTL.
func RunBlacklistCleanup(ctx context.Context, db *gorm.DB, ttlDays int) (int64, error) {
	deleteBefore := time.Now().UTC().Add(-time.Duration(ttlDays) * 24 * time.Hour)
	return authRepo.PurgeExpiredBlacklist(ctx, db, deleteBefore)
}

// StartBlacklistCleanupScheduler menjalankan cleanup harian (03:00) via cron.
// Kembalikan *cron.Cron supaya main bisa Stop() saat shutdown.
func StartBlacklistCleanupScheduler(db *gorm.DB) *cron.Cron {
	ttlDays := configs.BlacklistTTLDays
	if ttlDays <= 0 {
		ttlDays = 7
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc("0 3 * * *", func() {
		log.Info("[CLEANUP] Menjalankan pembersihan token_blacklist...")
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, err := RunBlacklistCleanup(ctx, db, ttlDays)
		switch {
		case err != nil:
			log.WithError(err).Error("[CLEANUP ERROR] Gagal hapus token")
		case n > 0:
			log.Infof("[CLEANUP] %d token kadaluarsa dihapus", n)
		default:
			log.Debug("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
		}
	})
	if err != nil {
		log.WithError(err).Error("cron AddFunc gagal")
	}
	c.Start()
	return c
}
