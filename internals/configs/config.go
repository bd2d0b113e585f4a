package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
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

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

/* ===============================
   Pengaturan sesi absensi QR
=================================*/

// Durasi sesi QR (menit) yang diizinkan saat create.
func QRSessionMinMinutes() int { return GetEnvInt("QR_SESSION_MIN_MINUTES", 3) }
func QRSessionMaxMinutes() int { return GetEnvInt("QR_SESSION_MAX_MINUTES", 30) }

// Lewat dari menit ini sejak sesi dibuat, redeem dicatat sebagai "late".
// 0 = fitur nonaktif, semua redeem dicatat "present".
func QRLateAfterMinutes() int { return GetEnvInt("QR_LATE_AFTER_MINUTES", 0) }
