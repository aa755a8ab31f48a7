// Package greeting implements the help/greeting module. Short messages
// containing a greeting token get a warm canned opener describing what
// the assistant can do.
package greeting

import (
	"context"
	"strings"

	"github.com/campusflow/campus-assistant-go/internal/bot"
	"github.com/campusflow/campus-assistant-go/internal/fuzzy"
	"github.com/campusflow/campus-assistant-go/internal/reply"
	"github.com/campusflow/campus-assistant-go/internal/textutil"
)

// maxGreetingWords keeps long sentences that merely open with "hi" out
// of this module.
const maxGreetingWords = 4

const fuzzyGreetingThreshold = 70

var greetingWords = []string{"hi", "hello", "hey", "hola", "whats up", "sup", "help"}

var greetingPhrases = []string{"good morning", "good evening", "good afternoon", "what can you do"}

// Handler answers greetings and help requests.
type Handler struct {
	synth *reply.Synthesizer
}

// NewHandler creates a new greeting handler.
func NewHandler(synth *reply.Synthesizer) *Handler {
	return &Handler{synth: synth}
}

// Name returns the intent label.
func (h *Handler) Name() string {
	return bot.IntentHelpGreeting
}

// CanHandle claims short messages with a greeting token, matched
// exactly or fuzzily so typos like "helo" still land here.
func (h *Handler) CanHandle(text string) bool {
	normalized := textutil.Normalize(text)
	if bot.WordCount(normalized) > maxGreetingWords {
		return false
	}

	if bot.ContainsAny(normalized, greetingPhrases) {
		return true
	}

	for _, tok := range strings.Fields(normalized) {
		for _, word := range greetingWords {
			if tok == word || fuzzy.Ratio(tok, word) > fuzzyGreetingThreshold {
				return true
			}
		}
	}
	return false
}

// Handle returns a randomly chosen greeting from the pool.
func (h *Handler) Handle(_ context.Context, _ string) (*reply.Reply, error) {
	return reply.NewText(h.synth.Greeting()).WithIntent(bot.IntentHelpGreeting), nil
}

var _ bot.Handler = (*Handler)(nil)
