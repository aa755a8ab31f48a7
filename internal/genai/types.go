// Package genai bridges unanswerable queries to generative AI chat
// providers (Groq and Gemini).
//
// Architecture:
//   - Groq: uses github.com/openai/openai-go/v3 (OpenAI-compatible API)
//   - Gemini: uses google.golang.org/genai (official SDK)
//
// Fallback strategy (3-layer):
//  1. Model retry: same model retried with exponential backoff
//  2. Model chain: next model in the provider's model list
//  3. Provider chain: next provider (Groq then Gemini)
package genai

import (
	"context"
	"time"
)

// Provider represents a generative AI provider.
type Provider string

const (
	// ProviderGroq represents Groq's API (OpenAI-compatible, fast inference).
	ProviderGroq Provider = "groq"
	// ProviderGemini represents Google's Gemini API (non-OpenAI-compatible).
	ProviderGemini Provider = "gemini"
)

// String returns the string representation of the provider.
func (p Provider) String() string {
	return string(p)
}

// GroqBaseURL is the OpenAI-compatible endpoint for Groq.
const GroqBaseURL = "https://api.groq.com/openai/v1/"

// Default model chains. First model is primary, rest are fallbacks
// tried in order.
var (
	DefaultGroqChatModels   = []string{"llama-3.3-70b-versatile", "llama-3.1-8b-instant", "gemma2-9b-it"}
	DefaultGeminiChatModels = []string{"gemini-2.0-flash", "gemini-2.0-flash-lite"}
)

// Turn is one prior exchange message in a conversation.
type Turn struct {
	// Role is "user" or "assistant".
	Role string
	// Content is the message text.
	Content string
}

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatResponder generates a conversational answer for a message with
// optional prior history.
type ChatResponder interface {
	// Respond generates an answer. History is ordered oldest first.
	Respond(ctx context.Context, history []Turn, message string) (string, error)
	// IsEnabled returns true if the responder is properly initialized.
	IsEnabled() bool
	// Close releases any resources held by the responder.
	Close() error
	// Provider returns the provider type for metrics.
	Provider() Provider
}

// RetryConfig defines retry behavior for provider API calls.
// Uses AWS-recommended Full Jitter exponential backoff.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including initial).
	MaxAttempts int

	// InitialDelay is the base delay before first retry.
	InitialDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	MaxDelay time.Duration
}

// DefaultRetryConfig is the retry policy used when none is provided.
var DefaultRetryConfig = RetryConfig{
	MaxAttempts:  2,
	InitialDelay: 500 * time.Millisecond,
	MaxDelay:     3 * time.Second,
}

// TrimHistory returns the newest turns up to limit. A non-positive
// limit disables trimming.
func TrimHistory(history []Turn, limit int) []Turn {
	if limit <= 0 || len(history) <= limit {
		return history
	}
	return history[len(history)-limit:]
}
