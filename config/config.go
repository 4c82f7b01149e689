package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zona waktu tetap tersedia di image tanpa tzdata

	"geo-attendance-backend/internal/notifier"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	Location       *time.Location
	DB             DBConfig
	JWTSecret      string
	TokenTTL       time.Duration
	UploadDir      string
	PhotoMaxWidth  int
	SMTP           notifier.SMTPConfig
	CORSOrigins    string
	LoginRateLimit int
}

// Load membaca .env (jika ada) lalu environment variable sistem.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	loc, err := time.LoadLocation(GetEnv("APP_TIMEZONE", "Asia/Jakarta"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppPort:  GetEnv("APP_PORT", "3000"),
		Location: loc,
		DB: DBConfig{
			Driver:      strings.ToLower(GetEnv("DB_DRIVER", DriverMySQL)),
			Host:        GetEnv("DB_HOST", "127.0.0.1"),
			Port:        GetEnv("DB_PORT", ""),
			User:        GetEnv("DB_USER", "root"),
			Password:    GetEnv("DB_PASSWORD", ""),
			Name:        GetEnv("DB_NAME", "geo_attendance"),
			SSLMode:     GetEnv("DB_SSLMODE", "disable"),
			AutoMigrate: GetEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		JWTSecret:     GetEnv("JWT_SECRET", ""),
		TokenTTL:      time.Duration(GetEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour,
		UploadDir:     GetEnv("UPLOAD_DIR", "./uploads"),
		PhotoMaxWidth: GetEnvAsInt("PHOTO_MAX_WIDTH", 1280),
		SMTP: notifier.SMTPConfig{
			Host:     GetEnv("SMTP_HOST", ""),
			Port:     GetEnvAsInt("SMTP_PORT", 587),
			Username: GetEnv("SMTP_USER", ""),
			Password: GetEnv("SMTP_PASSWORD", ""),
			From:     GetEnv("MAIL_FROM", "no-reply@localhost"),
		},
		CORSOrigins:    GetEnv("CORS_ORIGINS", "*"),
		LoginRateLimit: GetEnvAsInt("LOGIN_RATE_LIMIT", 10),
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET belum diset, memakai secret development.")
		cfg.JWTSecret = "dev-secret-change-me"
	}
	return cfg, nil
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
