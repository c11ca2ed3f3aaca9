// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, timeouts, data paths, and payment settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir        string // Data directory for the SQLite database
	CutoffDataPath string // Local path to the cutoff dataset (.json or .json.gz)

	// Remote dataset source (optional). When all object-store fields are set,
	// the dataset is fetched from the bucket instead of the local path.
	CutoffObjectEndpoint  string // S3-compatible endpoint (e.g., R2)
	CutoffObjectAccessKey string
	CutoffObjectSecretKey string
	CutoffObjectBucket    string
	CutoffObjectKey       string

	// Snapshot backup (optional, same object store as the dataset)
	SnapshotBackupEnabled bool

	// Payment Configuration (Razorpay)
	RazorpayKeyID       string
	RazorpayKeySecret   string
	PDFPricePaise       int // Price to unlock PDF export, in paise
	AnalyticsPricePaise int // Price to unlock analytics, in paise

	// Metrics Authentication
	MetricsUsername string // Username for /metrics endpoint Basic Auth (default: "prometheus")
	MetricsPassword string // Password for /metrics endpoint Basic Auth (empty = no auth)

	// Observability
	SentryToken         string // Better Stack Errors token (empty = disabled)
	SentryHost          string // Better Stack Errors ingesting host
	BetterStackToken    string // Better Stack Logs token (empty = stdout only)
	BetterStackEndpoint string // Better Stack Logs ingesting endpoint

	// Chance evaluation randomness. 0 means seed from the clock; any other
	// value makes probability jitter reproducible across runs.
	RandomSeed int64
}

// Load reads configuration from environment variables.
// It attempts to load .env file first, then reads from env vars.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "10000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),

		DataDir:        getEnv("DATA_DIR", getDefaultDataDir()),
		CutoffDataPath: getEnv("CUTOFF_DATA_PATH", "data/cutoffs.json"),

		CutoffObjectEndpoint:  getEnv("CUTOFF_OBJECT_ENDPOINT", ""),
		CutoffObjectAccessKey: getEnv("CUTOFF_OBJECT_ACCESS_KEY", ""),
		CutoffObjectSecretKey: getEnv("CUTOFF_OBJECT_SECRET_KEY", ""),
		CutoffObjectBucket:    getEnv("CUTOFF_OBJECT_BUCKET", ""),
		CutoffObjectKey:       getEnv("CUTOFF_OBJECT_KEY", "cutoffs.json"),

		SnapshotBackupEnabled: getBoolEnv("SNAPSHOT_BACKUP_ENABLED", false),

		RazorpayKeyID:       getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret:   getEnv("RAZORPAY_KEY_SECRET", ""),
		PDFPricePaise:       getIntEnv("PDF_PRICE_PAISE", 500),
		AnalyticsPricePaise: getIntEnv("ANALYTICS_PRICE_PAISE", 500),

		MetricsUsername: getEnv("METRICS_USERNAME", "prometheus"),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),

		SentryToken:         getEnv("SENTRY_TOKEN", ""),
		SentryHost:          getEnv("SENTRY_HOST", ""),
		BetterStackToken:    getEnv("BETTERSTACK_TOKEN", ""),
		BetterStackEndpoint: getEnv("BETTERSTACK_ENDPOINT", ""),

		RandomSeed: getInt64Env("RANDOM_SEED", 0),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks configuration consistency.
// Payment credentials are optional (the order endpoint degrades to 503),
// but half-configured object storage is a deployment mistake worth failing on.
func (c *Config) validate() error {
	hasAny := c.CutoffObjectEndpoint != "" || c.CutoffObjectAccessKey != "" ||
		c.CutoffObjectSecretKey != "" || c.CutoffObjectBucket != ""
	if hasAny && !c.HasObjectStore() {
		return fmt.Errorf("incomplete object store config: endpoint, access key, secret key and bucket are all required")
	}
	if c.SnapshotBackupEnabled && !c.HasObjectStore() {
		return fmt.Errorf("SNAPSHOT_BACKUP_ENABLED requires object store config")
	}
	if c.PDFPricePaise <= 0 || c.AnalyticsPricePaise <= 0 {
		return fmt.Errorf("unlock prices must be positive")
	}
	return nil
}

// HasObjectStore returns true if the S3-compatible object store is fully configured.
func (c *Config) HasObjectStore() bool {
	return c.CutoffObjectEndpoint != "" && c.CutoffObjectAccessKey != "" &&
		c.CutoffObjectSecretKey != "" && c.CutoffObjectBucket != ""
}

// HasRazorpay returns true if Razorpay credentials are configured.
func (c *Config) HasRazorpay() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

// SQLitePath returns the full path to the SQLite database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "planner.db")
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64Env retrieves int64 environment variable with fallback to default value
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getDefaultDataDir returns platform-specific default data directory
func getDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		return "./data"
	}
	return "/data"
}
