package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration. DBDriver is "postgres" or "sqlite";
	// with sqlite, DBName is the database file path.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration. Redis is optional; with no host and no URL the
	// rate limiter and chat history fall back to in-process behaviour.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Storage for uploaded food photos. Empty bucket disables uploads.
	S3BucketName string
	AWSRegion    string

	// Simulated latency of the mocked detector and agent.
	DetectionDelay time.Duration
	AgentDelay     time.Duration

	// Detection uploads allowed per user per hour.
	RateLimitPerHour int
}

const (
	defaultDetectionDelay   = 2 * time.Second
	defaultAgentDelay       = 1500 * time.Millisecond
	defaultRateLimitPerHour = 30
)

// RedisEnabled reports whether a Redis server has been configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// StorageEnabled reports whether uploaded images should be stored in S3.
func (c *Config) StorageEnabled() bool {
	return c.S3BucketName != ""
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	// Load configuration based on environment
	switch env {
	case CI:
		loadCIConfig(cfg)
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := loadAppSettings(cfg); err != nil {
		return nil, fmt.Errorf("failed to load application settings: %w", err)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI environment from environment variables only
func loadCIConfig(cfg *Config) {
	cfg.ServerPort = os.Getenv("SERVER_PORT")
	cfg.ServerHost = os.Getenv("SERVER_HOST")
	cfg.DBDriver = os.Getenv("DB_DRIVER")
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = os.Getenv("DB_PORT")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = os.Getenv("DB_SSL_MODE")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")

	// CI secrets arrive as TEST_-prefixed variables
	cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
	cfg.RedisPassword = os.Getenv("TEST_REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("TEST_REDIS_URL")
	cfg.RedisDB = 0
}

// loadDevConfig loads configuration for development and test. Each value is
// read from a docker secret when present and from the environment otherwise.
func loadDevConfig(cfg *Config) {
	cfg.ServerPort = setting("server_port")
	cfg.ServerHost = setting("server_host")
	cfg.DBDriver = setting("db_driver")
	cfg.DBHost = setting("db_host")
	cfg.DBPort = setting("db_port")
	cfg.DBUser = setting("db_user")
	cfg.DBPassword = setting("db_password")
	cfg.DBName = setting("db_name")
	cfg.DBSSLMode = setting("db_ssl_mode")
	cfg.RedisHost = setting("redis_host")
	cfg.RedisPort = setting("redis_port")
	cfg.RedisPassword = setting("redis_password")
	cfg.RedisURL = setting("redis_url")
	cfg.RedisDB = 0
	cfg.JWTSecret = setting("jwt_secret")
}

// loadProdConfig loads configuration for production environment using ONLY Docker secrets
func loadProdConfig(cfg *Config) {
	cfg.ServerPort = readSecret("server_port")
	cfg.ServerHost = readSecret("server_host")
	cfg.DBDriver = readSecret("db_driver")
	cfg.DBHost = readSecret("db_host")
	cfg.DBPort = readSecret("db_port")
	cfg.DBUser = readSecret("db_user")
	cfg.DBPassword = readSecret("db_password")
	cfg.DBName = readSecret("db_name")
	cfg.DBSSLMode = readSecret("db_ssl_mode")
	cfg.RedisHost = readSecret("redis_host")
	cfg.RedisPort = readSecret("redis_port")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.RedisDB = 0
	cfg.JWTSecret = readSecret("jwt_secret")
	cfg.RedisURL = readSecret("redis_url")
}

// loadAppSettings reads the non-secret tunables, which are plain environment
// variables in every environment.
func loadAppSettings(cfg *Config) error {
	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}

	cfg.S3BucketName = os.Getenv("S3_BUCKET_NAME")
	cfg.AWSRegion = os.Getenv("AWS_REGION")

	var err error
	if cfg.DetectionDelay, err = durationMillis("DETECTION_DELAY_MS", defaultDetectionDelay); err != nil {
		return err
	}
	if cfg.AgentDelay, err = durationMillis("AGENT_DELAY_MS", defaultAgentDelay); err != nil {
		return err
	}

	cfg.RateLimitPerHour = defaultRateLimitPerHour
	if v := os.Getenv("RATE_LIMIT_PER_HOUR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return ValidationError{Field: "RATE_LIMIT_PER_HOUR", Message: fmt.Sprintf("must be a positive integer, got %q", v)}
		}
		cfg.RateLimitPerHour = n
	}
	return nil
}

func durationMillis(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return 0, ValidationError{Field: name, Message: fmt.Sprintf("must be a non-negative number of milliseconds, got %q", v)}
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// setting returns the docker secret called name, or the upper-cased
// environment variable of the same name.
func setting(name string) string {
	if v := readSecret(name); v != "" {
		return v
	}
	return os.Getenv(strings.ToUpper(name))
}

func secretsDir() string {
	if dir := os.Getenv("SECRETS_DIR"); dir != "" {
		return dir
	}
	return "/run/secrets"
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	if data, err := os.ReadFile(filepath.Join(secretsDir(), name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
