// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "CAMPUS_PORT"
	EnvLogLevel        = "CAMPUS_LOG_LEVEL"
	EnvShutdownTimeout = "CAMPUS_SHUTDOWN_TIMEOUT"
	EnvEnvironment     = "CAMPUS_ENVIRONMENT"

	// Data
	EnvDataDir = "CAMPUS_DATA_DIR"

	// Auth
	EnvAuthSalt = "CAMPUS_AUTH_SALT"

	// Chat pipeline
	EnvChatTimeout          = "CAMPUS_CHAT_TIMEOUT"
	EnvInfoMatchPolicy      = "CAMPUS_INFO_MATCH_POLICY"
	EnvEmotionMinConfidence = "CAMPUS_EMOTION_MIN_CONFIDENCE"
	EnvReplyMinSentences    = "CAMPUS_REPLY_MIN_SENTENCES"
	EnvMaxResults           = "CAMPUS_MAX_RESULTS"

	// Rate Limits
	EnvGlobalRateRPS     = "CAMPUS_GLOBAL_RATE_RPS"
	EnvSessionRateBurst  = "CAMPUS_SESSION_RATE_BURST"
	EnvSessionRateRefill = "CAMPUS_SESSION_RATE_REFILL"
	EnvAIRatePerHour     = "CAMPUS_AI_RATE_PER_HOUR"
	EnvAIMinInterval     = "CAMPUS_AI_MIN_INTERVAL"

	// AI Feature
	EnvGroqAPIKey        = "CAMPUS_GROQ_API_KEY"
	EnvGeminiAPIKey      = "CAMPUS_GEMINI_API_KEY"
	EnvGroqChatModels    = "CAMPUS_GROQ_CHAT_MODELS"
	EnvGeminiChatModels  = "CAMPUS_GEMINI_CHAT_MODELS"
	EnvAIMaxHistoryTurns = "CAMPUS_AI_MAX_HISTORY_TURNS"

	// Backup Feature (S3-compatible object storage)
	EnvBackupEnabled         = "CAMPUS_BACKUP_ENABLED"
	EnvBackupEndpoint        = "CAMPUS_BACKUP_ENDPOINT"
	EnvBackupAccessKeyID     = "CAMPUS_BACKUP_ACCESS_KEY_ID"
	EnvBackupSecretAccessKey = "CAMPUS_BACKUP_SECRET_ACCESS_KEY"
	EnvBackupBucketName      = "CAMPUS_BACKUP_BUCKET_NAME"
	EnvBackupPrefix          = "CAMPUS_BACKUP_PREFIX"
	EnvBackupInterval        = "CAMPUS_BACKUP_INTERVAL"

	// Sentry Feature
	EnvSentryDSN         = "CAMPUS_SENTRY_DSN"
	EnvSentryEnvironment = "CAMPUS_SENTRY_ENVIRONMENT"
	EnvSentryRelease     = "CAMPUS_SENTRY_RELEASE"
	EnvSentrySampleRate  = "CAMPUS_SENTRY_SAMPLE_RATE"

	// Better Stack Feature
	EnvBetterStackToken    = "CAMPUS_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "CAMPUS_BETTERSTACK_ENDPOINT"

	// Metrics Auth Feature
	EnvMetricsUsername = "CAMPUS_METRICS_USERNAME"
	EnvMetricsPassword = "CAMPUS_METRICS_PASSWORD"
)
