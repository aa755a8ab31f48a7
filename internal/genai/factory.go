package genai

import (
	"context"
	"fmt"

	"github.com/campusflow/campus-assistant-go/internal/config"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/ratelimit"
)

// NewResponderFromConfig builds the provider chain from configuration.
// Groq is primary when configured, Gemini second. Returns nil when no
// provider has an API key (AI fallback disabled).
func NewResponderFromConfig(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log *logger.Logger) (ChatResponder, error) {
	if !cfg.HasAIProvider() {
		return nil, nil //nolint:nilnil // Intentional: AI fallback disabled when no API key
	}

	var chain []ChatResponder

	if groq := NewGroqChatResponder(cfg.GroqAPIKey, cfg.GroqChatModels, DefaultRetryConfig, log); groq != nil {
		chain = append(chain, groq)
	}

	if cfg.GeminiAPIKey != "" {
		gemini, err := NewGeminiChatResponder(ctx, cfg.GeminiAPIKey, cfg.GeminiChatModels, DefaultRetryConfig, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini responder: %w", err)
		}
		if gemini != nil {
			chain = append(chain, gemini)
		}
	}

	if len(chain) == 0 {
		return nil, nil //nolint:nilnil // Intentional: AI fallback disabled when no API key
	}

	primary := chain[0]
	var fallback ChatResponder
	if len(chain) > 1 {
		fallback = chain[1]
	}

	interval := ratelimit.NewIntervalLimiter(cfg.AIMinInterval)

	log.WithFields(map[string]any{
		"primary": primary.Provider(),
		"fallback": func() string {
			if fallback != nil {
				return string(fallback.Provider())
			}
			return "none"
		}(),
	}).Info("generative AI chat providers configured")

	return NewFallbackChatResponder(primary, fallback, interval, m, log), nil
}
