package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	AppBaseURL  string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// Baseline used for the comparison-to-average annotation
	ReferenceAverageScore float64

	// Upper bound for a single store round-trip
	StoreTimeout time.Duration

	// Unverified accounts older than this are pruned
	UnverifiedRetention time.Duration
}

func Load() *Config {
	// .env is optional; deployments set real env vars
	_ = godotenv.Load()

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	refAvg, err := strconv.ParseFloat(getEnv("REFERENCE_AVG_SCORE", "4.8"), 64)
	if err != nil || refAvg <= 0 {
		refAvg = 4.8
	}
	storeTimeoutMs, _ := strconv.Atoi(getEnv("STORE_TIMEOUT_MS", "5000"))
	if storeTimeoutMs <= 0 {
		storeTimeoutMs = 5000
	}
	retentionHours, _ := strconv.Atoi(getEnv("UNVERIFIED_RETENTION_H", "168"))
	if retentionHours <= 0 {
		retentionHours = 168
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/ecotrack?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		AppBaseURL:  getEnv("APP_BASE_URL", "http://localhost:5173"),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@ecotrack.app"),
		FromName:     getEnv("FROM_NAME", "EcoTrack"),

		ReferenceAverageScore: refAvg,
		StoreTimeout:          time.Duration(storeTimeoutMs) * time.Millisecond,
		UnverifiedRetention:   time.Duration(retentionHours) * time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
