package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Object storage (S3-compatible: AWS, MinIO, R2, Spaces)
	S3Bucket      string
	S3Region      string
	S3Key         string
	S3Secret      string
	S3Endpoint    string
	S3PublicURL   string
	StoragePrefix string

	// Auth token lifetimes
	ConfirmTokenExpiry time.Duration
	ResetTokenExpiry   time.Duration

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "dapur_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"), 168*time.Hour),

		S3Bucket:      getEnv("S3_BUCKET", "dapur-images"),
		S3Region:      getEnv("S3_REGION", "us-east-1"),
		S3Key:         getEnv("S3_KEY", ""),
		S3Secret:      getEnv("S3_SECRET", ""),
		S3Endpoint:    getEnv("S3_ENDPOINT", ""),
		S3PublicURL:   getEnv("S3_PUBLIC_URL", ""),
		StoragePrefix: getEnv("STORAGE_PREFIX", "makanan"),

		ConfirmTokenExpiry: parseDuration(getEnv("CONFIRM_TOKEN_EXPIRY", "24h"), 24*time.Hour),
		ResetTokenExpiry:   parseDuration(getEnv("RESET_TOKEN_EXPIRY", "1h"), time.Hour),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
