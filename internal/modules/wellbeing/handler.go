// Package wellbeing implements the emotional-support module. It is the
// first stage of the cascade: an aggressive sweep for emotional content
// that short-circuits intent classification and answers with a composed
// empathetic reply. Actionable academic requests are deliberately let
// through so incidental emotional wording does not hijack them.
package wellbeing

import (
	"context"
	"strings"

	"github.com/campusflow/campus-assistant-go/internal/bot"
	"github.com/campusflow/campus-assistant-go/internal/emotion"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/reply"
	"github.com/campusflow/campus-assistant-go/internal/textutil"
)

// emotionalWords claim a message when any of them appears as a whole
// token. Single words are token-matched rather than substring-matched
// so "time" does not trip on "im".
var emotionalWords = []string{
	"feel", "feeling", "sad", "happy", "angry", "worried", "anxious", "stressed",
	"depressed", "excited", "tired", "overwhelmed", "confused", "lonely", "proud",
	"disappointed", "relieved", "grateful", "motivated", "calm", "guilty", "hurt",
	"im", "emotion", "mood", "emotional",
	"cry", "crying", "tears", "upset", "frustrated", "annoyed", "mad", "furious",
	"scared", "afraid", "panic", "terrified", "nervous", "uneasy", "restless",
	"exhausted", "drained", "fatigue", "sleepy", "drowsy",
	"hopeless", "helpless", "worthless", "empty", "numb", "broken", "crushed",
	"joy", "joyful", "cheerful", "delighted", "glad", "pleased", "thrilled",
	"peaceful", "relaxed", "serene", "content", "satisfied",
}

// emotionalPhrases claim a message when contained anywhere in it.
var emotionalPhrases = []string{
	"i am", "i feel", "makes me", "i feel so", "i am so", "i am really", "im really",
	"burned out", "at ease", "mental health", "therapy", "counseling",
}

// Handler short-circuits the cascade for emotional messages.
type Handler struct {
	detector      *emotion.Detector
	synth         *reply.Synthesizer
	minConfidence float64
	logger        *logger.Logger
	metrics       *metrics.Metrics
}

// NewHandler creates a new wellbeing handler. minConfidence is the
// detector confidence below which an indicator match is not claimed.
func NewHandler(detector *emotion.Detector, synth *reply.Synthesizer, minConfidence float64, log *logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		detector:      detector,
		synth:         synth,
		minConfidence: minConfidence,
		logger:        log.WithModule("wellbeing"),
		metrics:       m,
	}
}

// Name returns the intent label.
func (h *Handler) Name() string {
	return bot.IntentMentalHealth
}

// CanHandle claims messages carrying an emotional indicator that the
// detector confirms with enough confidence, unless the message is an
// actionable academic request. Both gates are required: the indicator
// sweep alone would claim any first-person sentence, and the detector
// alone fires on stray fuzzy matches in neutral queries.
func (h *Handler) CanHandle(text string) bool {
	if bot.IsAcademicRequest(text) {
		return false
	}
	if !hasEmotionalIndicator(textutil.Normalize(text)) {
		return false
	}

	result := h.detector.Detect(text)
	return result.Emotion != emotion.Neutral && result.Confidence >= h.minConfidence
}

// Handle composes an empathetic reply from the full emotional readout.
func (h *Handler) Handle(_ context.Context, text string) (*reply.Reply, error) {
	analysis := h.detector.Analyze(text)
	h.metrics.RecordEmotionDetection(analysis.Emotion)
	h.logger.WithFields(map[string]any{
		"emotion":    analysis.Emotion,
		"confidence": analysis.Confidence,
		"sentiment":  analysis.Sentiment,
	}).Debug("emotional message detected")

	message := h.synth.Compose(analysis)
	return reply.NewText(message).WithIntent(bot.IntentMentalHealth), nil
}

func hasEmotionalIndicator(normalized string) bool {
	if bot.ContainsAny(normalized, emotionalPhrases) {
		return true
	}
	tokens := strings.Fields(normalized)
	for _, tok := range tokens {
		for _, word := range emotionalWords {
			if tok == word {
				return true
			}
		}
	}
	return false
}

var _ bot.Handler = (*Handler)(nil)
