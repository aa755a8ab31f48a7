// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, pipeline thresholds, rate limits, and optional features.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Info retrieval policies. See PipelineConfig.InfoMatchPolicy.
const (
	InfoPolicyExact      = "exact"
	InfoPolicyPermissive = "permissive"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	Environment     string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir string

	// Auth Configuration
	AuthSalt string // mixed into password hashes; changing it invalidates stored hashes

	// Pipeline Configuration (embedded)
	Pipeline PipelineConfig

	// AI Configuration
	GroqAPIKey        string
	GeminiAPIKey      string
	GroqChatModels    []string // empty = genai package defaults
	GeminiChatModels  []string // empty = genai package defaults
	AIMinInterval     time.Duration
	AIMaxHistoryTurns int
	AIRatePerHour     float64

	// Backup Configuration (S3-compatible object storage)
	BackupEnabled         bool
	BackupEndpoint        string
	BackupAccessKeyID     string
	BackupSecretAccessKey string
	BackupBucketName      string
	BackupPrefix          string
	BackupInterval        time.Duration

	// Sentry Configuration
	SentryDSN         string
	SentryEnvironment string
	SentryRelease     string
	SentrySampleRate  float64

	// Better Stack Configuration
	BetterStackToken    string
	BetterStackEndpoint string

	// Metrics Authentication
	MetricsUsername string // Username for /metrics endpoint Basic Auth
	MetricsPassword string // Password for /metrics endpoint Basic Auth (empty = no auth)
}

// PipelineConfig centralizes the conversational pipeline configuration.
type PipelineConfig struct {
	// ChatTimeout bounds processing of a single message.
	ChatTimeout time.Duration

	// InfoMatchPolicy selects how campus info queries are matched.
	// InfoPolicyExact accepts only exact normalized key matches.
	// InfoPolicyPermissive scores fields and accepts above a threshold.
	InfoMatchPolicy string

	// EmotionMinConfidence gates the emotional pre-check. Messages scoring
	// at or above this confidence short-circuit intent classification.
	EmotionMinConfidence float64

	// ReplyMinSentences is the sentence floor for empathetic replies.
	ReplyMinSentences int

	// MaxResults caps retrieval results per reply.
	MaxResults int

	// Rate limiting configuration
	SessionRateBurst  float64
	SessionRateRefill float64 // tokens per second
	GlobalRateRPS     float64
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		// Server Configuration
		Port:            getEnv(EnvPort, "8080"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		Environment:     getEnv(EnvEnvironment, "production"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, 30*time.Second),

		// Data Configuration
		DataDir: getEnv(EnvDataDir, "./data"),

		// Auth Configuration
		AuthSalt: getEnv(EnvAuthSalt, "smartbuddy_salt_2024"),

		Pipeline: PipelineConfig{
			ChatTimeout:          getDurationEnv(EnvChatTimeout, ChatProcessing),
			InfoMatchPolicy:      getEnv(EnvInfoMatchPolicy, InfoPolicyExact),
			EmotionMinConfidence: getFloatEnv(EnvEmotionMinConfidence, 0.3),
			ReplyMinSentences:    getIntEnv(EnvReplyMinSentences, 3),
			MaxResults:           getIntEnv(EnvMaxResults, 10),
			SessionRateBurst:     getFloatEnv(EnvSessionRateBurst, 10.0),
			SessionRateRefill:    getFloatEnv(EnvSessionRateRefill, 0.5), // 1 per 2s
			GlobalRateRPS:        getFloatEnv(EnvGlobalRateRPS, 100.0),
		},

		// AI Configuration
		GroqAPIKey:        getEnv(EnvGroqAPIKey, ""),
		GeminiAPIKey:      getEnv(EnvGeminiAPIKey, ""),
		GroqChatModels:    getListEnv(EnvGroqChatModels),
		GeminiChatModels:  getListEnv(EnvGeminiChatModels),
		AIMinInterval:     getDurationEnv(EnvAIMinInterval, AIMinInterval),
		AIMaxHistoryTurns: getIntEnv(EnvAIMaxHistoryTurns, 20),
		AIRatePerHour:     getFloatEnv(EnvAIRatePerHour, 30.0),

		// Backup Configuration
		BackupEnabled:         getBoolEnv(EnvBackupEnabled, false),
		BackupEndpoint:        getEnv(EnvBackupEndpoint, ""),
		BackupAccessKeyID:     getEnv(EnvBackupAccessKeyID, ""),
		BackupSecretAccessKey: getEnv(EnvBackupSecretAccessKey, ""),
		BackupBucketName:      getEnv(EnvBackupBucketName, ""),
		BackupPrefix:          getEnv(EnvBackupPrefix, "backups/"),
		BackupInterval:        getDurationEnv(EnvBackupInterval, 6*time.Hour),

		// Sentry Configuration
		SentryDSN:         getEnv(EnvSentryDSN, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, getEnv(EnvEnvironment, "production")),
		SentryRelease:     getEnv(EnvSentryRelease, ""),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),

		// Better Stack Configuration
		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),

		// Metrics Authentication
		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New(EnvPort+" is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New(EnvDataDir+" is required"))
	}
	if err := c.Pipeline.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("pipeline config: %w", err))
	}
	if c.AIMinInterval < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %v", EnvAIMinInterval, c.AIMinInterval))
	}
	if c.AIMaxHistoryTurns <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvAIMaxHistoryTurns, c.AIMaxHistoryTurns))
	}
	if c.BackupEnabled {
		if c.BackupEndpoint == "" || c.BackupAccessKeyID == "" || c.BackupSecretAccessKey == "" || c.BackupBucketName == "" {
			errs = append(errs, errors.New("backup enabled but endpoint, credentials, or bucket missing"))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks pipeline configuration values.
func (p *PipelineConfig) Validate() error {
	var errs []error

	if p.ChatTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvChatTimeout, p.ChatTimeout))
	}
	if p.InfoMatchPolicy != InfoPolicyExact && p.InfoMatchPolicy != InfoPolicyPermissive {
		errs = append(errs, fmt.Errorf("%s must be %q or %q, got %q",
			EnvInfoMatchPolicy, InfoPolicyExact, InfoPolicyPermissive, p.InfoMatchPolicy))
	}
	if p.EmotionMinConfidence < 0 || p.EmotionMinConfidence > 1 {
		errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", EnvEmotionMinConfidence, p.EmotionMinConfidence))
	}
	if p.ReplyMinSentences < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", EnvReplyMinSentences, p.ReplyMinSentences))
	}
	if p.MaxResults <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvMaxResults, p.MaxResults))
	}
	if p.GlobalRateRPS <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvGlobalRateRPS, p.GlobalRateRPS))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// HasAIProvider returns true if at least one generative provider is configured.
func (c *Config) HasAIProvider() bool {
	return c.GroqAPIKey != "" || c.GeminiAPIKey != ""
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

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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

// getListEnv retrieves a comma-separated environment variable as a slice.
// Returns nil when unset so callers can apply package defaults.
func getListEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
