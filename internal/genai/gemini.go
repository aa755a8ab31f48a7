package genai

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/campusflow/campus-assistant-go/internal/logger"
)

// geminiChatResponder generates chat answers through Google's Gemini
// API, trying each configured model in order.
type geminiChatResponder struct {
	client *genai.Client
	models []string
	retry  RetryConfig
	logger *logger.Logger
}

// NewGeminiChatResponder creates a Gemini-backed responder. Returns nil
// if apiKey is empty (disabled).
func NewGeminiChatResponder(ctx context.Context, apiKey string, models []string, retry RetryConfig, log *logger.Logger) (ChatResponder, error) {
	if apiKey == "" {
		return nil, nil //nolint:nilnil // Intentional: provider disabled when no API key
	}
	if len(models) == 0 {
		models = DefaultGeminiChatModels
	}
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryConfig
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiChatResponder{
		client: client,
		models: models,
		retry:  retry,
		logger: log.WithModule("genai.gemini"),
	}, nil
}

func (g *geminiChatResponder) IsEnabled() bool { return true }

func (g *geminiChatResponder) Provider() Provider { return ProviderGemini }

func (g *geminiChatResponder) Close() error { return nil }

func (g *geminiChatResponder) Respond(ctx context.Context, history []Turn, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(ChatSystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		MaxOutputTokens:   512,
	}

	var lastErr error
	for _, model := range g.models {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		answer, err := g.respondWithModel(ctx, model, contents, config)
		if err == nil {
			return answer, nil
		}
		lastErr = err

		if IsPermanent(err) {
			return "", err
		}

		g.logger.WithError(err).WithField("model", model).
			Warn("gemini model failed, trying next")
	}

	return "", fmt.Errorf("all gemini models failed: %w", lastErr)
}

func (g *geminiChatResponder) respondWithModel(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	var answer string

	err := WithRetry(ctx, g.retry, func() error {
		start := time.Now()

		result, err := g.client.Models.GenerateContent(ctx, model, contents, config)
		if err != nil {
			return fmt.Errorf("generate content failed: %w", err)
		}

		answer = result.Text()
		if result.UsageMetadata != nil {
			g.logger.WithFields(map[string]any{
				"model":        model,
				"total_tokens": result.UsageMetadata.TotalTokenCount,
				"duration_ms":  time.Since(start).Milliseconds(),
			}).Debug("gemini chat completion")
		}

		return nil
	})
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", fmt.Errorf("gemini returned empty answer for model %s", model)
	}

	return answer, nil
}
