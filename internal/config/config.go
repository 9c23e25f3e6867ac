package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Admin session
	JWTSecret         string
	JWTExpiry         time.Duration
	AdminEmail        string
	AdminPasswordHash string // bcrypt hash of the admin password

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, DigitalOcean Spaces, etc.)
	S3Region           string
	S3AccessKey        string
	S3SecretKey        string
	S3Endpoint         string // Optional: for S3-compatible services
	BucketProfile      string
	BucketCertificates string
	BucketProjectFiles string
	StorageListLimit   int   // Max objects returned by a single list call
	StorageUploadLimit int64 // Per-file size ceiling in bytes
	StoragePutTimeout  time.Duration

	// AI description generation (OpenAI-compatible, optional)
	AIBaseURL string
	AIAPIKey  string
	AIModel   string
	AITimeout time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Portfolio"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envString("APP_URL", "http://localhost:8090"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/portfolio.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Admin session
		JWTSecret:         envRequired("JWT_SECRET"),
		JWTExpiry:         envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days
		AdminEmail:        envRequired("ADMIN_EMAIL"),
		AdminPasswordHash: envRequired("ADMIN_PASSWORD_HASH"),

		// Storage
		S3Region:           envRequired("S3_REGION"),
		S3AccessKey:        envRequired("S3_ACCESS_KEY"),
		S3SecretKey:        envRequired("S3_SECRET_KEY"),
		S3Endpoint:         envString("S3_ENDPOINT", ""), // Optional: for non-AWS providers
		BucketProfile:      envString("BUCKET_PROFILE", "profile"),
		BucketCertificates: envString("BUCKET_CERTIFICATES", "certificates"),
		BucketProjectFiles: envString("BUCKET_PROJECT_FILES", "project-files"),
		StorageListLimit:   envInt("STORAGE_LIST_LIMIT", 100),
		StorageUploadLimit: int64(envInt("STORAGE_UPLOAD_LIMIT_MB", 10)) << 20,
		StoragePutTimeout:  envDuration("STORAGE_PUT_TIMEOUT", 30*time.Second),

		// AI
		AIBaseURL: envString("AI_BASE_URL", "https://api.openai.com/v1"),
		AIAPIKey:  envString("AI_API_KEY", ""),
		AIModel:   envString("AI_MODEL", "gpt-4o-mini"),
		AITimeout: envDuration("AI_TIMEOUT", 15*time.Second),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Secrets and credentials are excluded, safe to expose in request contexts.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		AppURL:  c.AppURL,
		Port:    c.Port,

		S3Endpoint:         c.S3Endpoint,
		BucketProfile:      c.BucketProfile,
		BucketCertificates: c.BucketCertificates,
		BucketProjectFiles: c.BucketProjectFiles,
	}
}
