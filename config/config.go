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

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration; RedisURL takes precedence when set. An empty
	// address disables the Redis-backed rate limiter.
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Object storage configuration
	S3Bucket     string
	S3Region     string
	SignedURLTTL time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig creates a new Config instance from environment variables, with
// Docker-secret file fallback for sensitive values.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		ServerHost:    getEnv("SERVER_HOST", "0.0.0.0"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnvOrSecret("DB_USER", "db_user", "mealpicker"),
		DBPassword:    getEnvOrSecret("DB_PASSWORD", "db_password", ""),
		DBName:        getEnv("DB_NAME", "mealpicker"),
		DBSSLMode:     getEnv("DB_SSL_MODE", "disable"),
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnvOrSecret("REDIS_PASSWORD", "redis_password", ""),
		RedisDB:       0,
		S3Bucket:      getEnv("S3_BUCKET_NAME", "mymealpicker"),
		S3Region:      getEnv("AWS_REGION", "eu-central-1"),
		SignedURLTTL:  time.Hour,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}

	if ttl := os.Getenv("SIGNED_URL_TTL_SECONDS"); ttl != "" {
		seconds, err := strconv.Atoi(ttl)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid SIGNED_URL_TTL_SECONDS: %q", ttl)
		}
		cfg.SignedURLTTL = time.Duration(seconds) * time.Second
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	var errs []string

	if cfg.S3Bucket == "" {
		errs = append(errs, "S3_BUCKET_NAME must not be empty")
	}
	if cfg.S3Region == "" {
		errs = append(errs, "AWS_REGION must not be empty")
	}
	if GetEnvironment() == Production && cfg.DBPassword == "" {
		errs = append(errs, "DB_PASSWORD (or the db_password secret) is required in production")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// RedisAddr returns the host:port address, or "" when Redis is not configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvOrSecret prefers the environment variable and falls back to a Docker
// secret file of the given name.
func getEnvOrSecret(envKey, secretName, fallback string) string {
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	if value := readSecret(secretName); value != "" {
		return value
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
