package genai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/campusflow/campus-assistant-go/internal/logger"
)

// groqChatResponder generates chat answers through Groq's
// OpenAI-compatible API, trying each configured model in order.
type groqChatResponder struct {
	client openai.Client
	models []string
	retry  RetryConfig
	logger *logger.Logger
}

// NewGroqChatResponder creates a Groq-backed responder. Returns nil if
// apiKey is empty (disabled).
func NewGroqChatResponder(apiKey string, models []string, retry RetryConfig, log *logger.Logger) ChatResponder {
	if apiKey == "" {
		return nil
	}
	if len(models) == 0 {
		models = DefaultGroqChatModels
	}
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryConfig
	}

	client := openai.NewClient(
		option.WithBaseURL(GroqBaseURL),
		option.WithAPIKey(apiKey),
	)

	return &groqChatResponder{
		client: client,
		models: models,
		retry:  retry,
		logger: log.WithModule("genai.groq"),
	}
}

func (g *groqChatResponder) IsEnabled() bool { return true }

func (g *groqChatResponder) Provider() Provider { return ProviderGroq }

func (g *groqChatResponder) Close() error { return nil }

// Respond tries each model in order. A model is retried on transient
// errors before moving to the next one. Permanent errors abort the
// whole chain.
func (g *groqChatResponder) Respond(ctx context.Context, history []Turn, message string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(ChatSystemPrompt))
	for _, turn := range history {
		if turn.Role == RoleAssistant {
			messages = append(messages, openai.AssistantMessage(turn.Content))
		} else {
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	var lastErr error
	for _, model := range g.models {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		answer, err := g.respondWithModel(ctx, model, messages)
		if err == nil {
			return answer, nil
		}
		lastErr = err

		if IsPermanent(err) {
			return "", err
		}

		g.logger.WithError(err).WithField("model", model).
			Warn("groq model failed, trying next")
	}

	return "", fmt.Errorf("all groq models failed: %w", lastErr)
}

func (g *groqChatResponder) respondWithModel(ctx context.Context, model string, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	var answer string

	err := WithRetry(ctx, g.retry, func() error {
		start := time.Now()

		resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:       model,
			Messages:    messages,
			Temperature: openai.Float(0.7),
			MaxTokens:   openai.Int(512),
		})
		if err != nil {
			return fmt.Errorf("groq chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("groq returned no choices for model %s", model)
		}

		answer = resp.Choices[0].Message.Content
		g.logger.WithFields(map[string]any{
			"model":        model,
			"total_tokens": resp.Usage.TotalTokens,
			"duration_ms":  time.Since(start).Milliseconds(),
		}).Debug("groq chat completion")

		return nil
	})
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", fmt.Errorf("groq returned empty answer for model %s", model)
	}

	return answer, nil
}
