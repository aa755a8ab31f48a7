package reply

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/campusflow/campus-assistant-go/internal/emotion"
	"github.com/campusflow/campus-assistant-go/internal/textutil"
)

const contextPlaceholder = "{context}"

// Source yields random indices for pool selection. *rand.Rand from
// math/rand/v2 satisfies it, so tests can seed a PCG for determinism.
type Source interface {
	IntN(n int) int
}

// Synthesizer assembles empathetic replies from template pools. Curated
// templates loaded from the store override the built-in pools per
// emotion; every pick goes through the injected random source.
type Synthesizer struct {
	rng       Source
	templates map[string][]string
}

// NewSynthesizer builds a Synthesizer. A nil rng falls back to the
// shared global source; a nil template map uses the built-in pools.
func NewSynthesizer(rng Source, templates map[string][]string) *Synthesizer {
	if rng == nil {
		rng = globalSource{}
	}
	pools := DefaultTemplates()
	for label, pool := range templates {
		if len(pool) > 0 {
			pools[label] = pool
		}
	}
	return &Synthesizer{rng: rng, templates: pools}
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

func (s *Synthesizer) pick(pool []string) string {
	return pool[s.rng.IntN(len(pool))]
}

// Templated picks one template from the emotion's pool and substitutes
// the context clause. Unknown emotions use the general support pool.
// The result is padded to minSentences with supporting filler.
func (s *Synthesizer) Templated(emotionLabel, context string, minSentences int) string {
	pool, ok := s.templates[emotionLabel]
	if !ok || len(pool) == 0 {
		pool = s.templates[GeneralSupport]
	}
	msg := strings.ReplaceAll(s.pick(pool), contextPlaceholder, context)
	return s.EnsureMinimumSentences(msg, minSentences)
}

// Compose builds a four-sentence reply: acknowledgment, understanding,
// guidance, encouragement, each drawn from the emotion's pool. The
// highest-priority concern contributes one context clause spliced into
// the acknowledgment, intensity words sharpen it, and the finished text
// gets a trailing emoji chosen by sniffing the assembled message.
func (s *Synthesizer) Compose(a emotion.Analysis) string {
	ack := s.pickFor(acknowledgmentPools, genericAcknowledgments, a.Emotion)
	if len(a.Entities.Intensity) > 0 {
		ack += " and it sounds " + s.pick([]string{"really", "very", "quite"}) + " intense"
	}
	ack += emotion.ContextClause(a.Concerns)

	parts := []string{
		ack,
		s.pickFor(understandingPools, genericUnderstandings, a.Emotion),
		s.pickFor(guidancePools, genericGuidance, a.Emotion),
		s.pickFor(encouragementPools, genericEncouragements, a.Emotion),
	}
	for i, p := range parts {
		parts[i] = p + "."
	}

	return s.refine(strings.Join(parts, " "))
}

func (s *Synthesizer) pickFor(pools map[string][]string, generic []string, label string) string {
	if pool, ok := pools[label]; ok && len(pool) > 0 {
		return s.pick(pool)
	}
	return s.pick(generic)
}

// Greeting returns one of the warm greeting lines.
func (s *Synthesizer) Greeting() string {
	return s.pick(greetingPool)
}

// PoliteFallback returns a gentle listening prompt. It never says
// "I don't understand".
func (s *Synthesizer) PoliteFallback(context string) string {
	return strings.ReplaceAll(s.pick(politeFallbackPool), contextPlaceholder, context)
}

// FriendlyFallback answers non-emotional, non-matchable queries. It
// never says "I don't understand".
func (s *Synthesizer) FriendlyFallback() string {
	return s.pick(friendlyFallbackPool)
}

// EnsureMinimumSentences pads a reply with randomly chosen supporting
// sentences until it reaches minSentences.
func (s *Synthesizer) EnsureMinimumSentences(response string, minSentences int) string {
	have := textutil.CountSentences(response)
	for ; have < minSentences; have++ {
		response += " " + s.pick(supportingSentences)
	}
	return response
}

// refine normalizes whitespace, capitalizes the first rune, and appends
// the mood emoji.
func (s *Synthesizer) refine(response string) string {
	response = strings.Join(strings.Fields(response), " ")

	runes := []rune(response)
	if len(runes) > 0 && !unicode.IsUpper(runes[0]) {
		runes[0] = unicode.ToUpper(runes[0])
		response = string(runes)
	}

	lower := strings.ToLower(response)
	switch {
	case strings.Contains(lower, "sad") || strings.Contains(lower, "lonely"):
		response += " 💙"
	case strings.Contains(lower, "anxious") || strings.Contains(lower, "worried"):
		response += " 🌿"
	case strings.Contains(lower, "stressed") || strings.Contains(lower, "tired"):
		response += " 💪"
	case strings.Contains(lower, "happy") || strings.Contains(lower, "joy"):
		response += " ✨"
	case strings.Contains(lower, "angry"):
		response += " 🔥"
	default:
		response += " 💚"
	}

	return response
}
