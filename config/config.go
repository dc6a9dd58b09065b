package config

import (
	"fmt"
	"log"
	"os"
	"time"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret  string
	CronSecret string

	// Calendar day boundary for attendance; the company clock, not the server clock.
	Timezone string

	ResendAPIKey string
	AlertFrom    string
	AlertTo      string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
	S3PublicURL string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "hr201"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		JWTSecret:  get("JWT_SECRET", "dev-secret"),
		CronSecret: get("CRON_SECRET", ""),

		Timezone: get("APP_TIMEZONE", "Asia/Manila"),

		ResendAPIKey: get("RESEND_API_KEY", ""),
		AlertFrom:    get("ALERT_FROM", "HR System <noreply@hrmanager.com>"),
		AlertTo:      get("ALERT_TO", "hr@company.com"),

		S3Endpoint:  get("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: get("S3_ACCESS_KEY", ""),
		S3SecretKey: get("S3_SECRET_KEY", ""),
		S3Bucket:    get("S3_BUCKET", "201-files"),
		S3UseSSL:    get("S3_USE_SSL", "false") == "true",
		S3PublicURL: get("S3_PUBLIC_URL", ""),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

// Location resolves the configured timezone; falls back to UTC so a bad
// TZ name never takes the server down.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[config] warn: invalid APP_TIMEZONE %q, using UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}
