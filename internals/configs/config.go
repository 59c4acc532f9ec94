package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	AppPort     string
	AppTimezone *time.Location
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	AppPort = GetEnv("PORT", "3000")

	// Zona waktu sekolah; dipakai untuk "hari ini" di dashboard & minggu berjalan
	tz := GetEnv("APP_TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("⚠️ APP_TIMEZONE %q tidak valid, fallback ke UTC", tz)
		loc = time.UTC
	}
	AppTimezone = loc

	if os.Getenv("DB_HOST") == "" {
		log.Println("❌ DB_HOST belum diset!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
