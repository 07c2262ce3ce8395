package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	Port             = "5000"
	StaticIndex      = "public/index.html"
	CorsAllowOrigins = "*"
	RateLimitMax     = 100
	SettingsFile     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] .env tidak ditemukan, menggunakan ENV dari sistem")
		} else {
			log.Println("[INFO] .env file berhasil dimuat")
		}
	} else {
		log.Println("[INFO] Running in Railway, menggunakan ENV dari sistem")
	}

	Port = GetEnv("PORT", Port)
	StaticIndex = GetEnv("STATIC_INDEX", StaticIndex)
	CorsAllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", CorsAllowOrigins)
	RateLimitMax = GetEnvInt("RATE_LIMIT_MAX", RateLimitMax)
	SettingsFile = strings.TrimSpace(GetEnv("SETTINGS_FILE"))

	if SettingsFile == "" {
		log.Println("[INFO] SETTINGS_FILE tidak diset, memakai default settings")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvInt falls back to def when the variable is unset, unparsable or not positive.
func GetEnvInt(key string, def int) int {
	raw := strings.TrimSpace(GetEnv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("[WARN] %s=%q tidak valid, memakai default %d", key, raw, def)
		return def
	}
	return n
}
