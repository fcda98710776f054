package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	JWTSecret            string
	TokenTTL             time.Duration
	BlacklistTTLDays     int
	CorsOrigins          []string
	AIServiceURL         string
	AIServiceToken       string
	DBAutoMigrate        bool
	SeedAdminEmail       string
	SeedAdminPassword    string
	RequestTimeout       = 5 * time.Second
	AnalysisTimeout      = 40 * time.Second
	defaultCorsOrigins   = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	defaultTokenTTLHours = 24
)

// DefaultCorsOrigins dipakai kalau CORS_ORIGINS kosong (dev frontend).
func DefaultCorsOrigins() []string {
	return append([]string(nil), defaultCorsOrigins...)
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Warn("⚠️ .env tidak ditemukan, menggunakan ENV dari sistem")
	} else {
		log.Info("✅ .env file berhasil dimuat")
	}

	InitLogger(GetEnv("LOG_LEVEL", "info"))

	JWTSecret = GetEnv("JWT_SECRET")
	TokenTTL = time.Duration(GetEnvInt("TOKEN_TTL_HOURS", defaultTokenTTLHours)) * time.Hour
	BlacklistTTLDays = GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7)
	AIServiceURL = strings.TrimRight(GetEnv("AI_SERVICE_URL"), "/")
	AIServiceToken = GetEnv("AI_SERVICE_TOKEN")
	DBAutoMigrate = GetEnvBool("DB_AUTO_MIGRATE", false)
	SeedAdminEmail = GetEnv("SEED_ADMIN_EMAIL")
	SeedAdminPassword = GetEnv("SEED_ADMIN_PASSWORD")
	RequestTimeout = time.Duration(GetEnvInt("REQUEST_TIMEOUT_SECONDS", 5)) * time.Second
	AnalysisTimeout = time.Duration(GetEnvInt("ANALYSIS_TIMEOUT_SECONDS", 40)) * time.Second

	CorsOrigins = DefaultCorsOrigins()
	if raw := strings.TrimSpace(GetEnv("CORS_ORIGINS")); raw != "" {
		CorsOrigins = splitCSV(raw)
	}

	if JWTSecret == "" {
		log.Error("❌ JWT_SECRET belum diset!")
	} else {
		log.Info("✅ JWT_SECRET berhasil dimuat.")
	}
	if AIServiceURL == "" {
		log.Warn("AI_SERVICE_URL kosong, generate-ai akan ditolak")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("ENV %s bukan angka (%q), pakai default %d", key, v, def)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func splitCSV(s string) []string {
	out := make([]string, 0, 4)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
