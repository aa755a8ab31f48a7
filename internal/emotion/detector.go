// Package emotion scores a fixed emotion taxonomy against user text using
// exact, substring, and fuzzy keyword matching. Detection always yields a
// result: vague phrasings fall back to an indirect reading and only truly
// affect-free text comes back neutral.
package emotion

import (
	"strings"

	"github.com/campusflow/campus-assistant-go/internal/fuzzy"
	"github.com/campusflow/campus-assistant-go/internal/textutil"
)

const (
	exactTokenWeight   = 2.0
	phraseWeight       = 1.5
	fuzzyTokenWeight   = 0.8
	fuzzyTextWeight    = 0.5
	fuzzyThreshold     = 60
	indirectConfidence = 0.3
)

// Result is a detected emotion with its relative-dominance confidence.
// Confidence is not a calibrated probability.
type Result struct {
	Emotion    string
	Confidence float64
}

// Entities groups contextual words found in the message.
type Entities struct {
	Academic  []string
	Social    []string
	Time      []string
	Intensity []string
}

// Analysis is the full per-message readout consumed by the response
// synthesizer.
type Analysis struct {
	Result
	Sentiment string
	Emotions  []string
	Concerns  []string
	Entities  Entities
}

// Detector runs the emotion scoring pipeline. The zero value is not
// usable; construct with NewDetector.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the dominant emotion for text. Keyword hits score
// exact-token 2.0, phrase-substring 1.5, fuzzy-token 0.8 (once per
// keyword), fuzzy-whole-text 0.5. Confidence is the winner's share of
// half the total signal, clamped to 1. When nothing scores, indirect
// phrasings map to a low-confidence sad or happy reading.
func (d *Detector) Detect(text string) Result {
	preprocessed := textutil.Normalize(text)
	tokens := d.tokenize(preprocessed)

	scores := make(map[string]float64, len(Labels))
	total := 0.0

	for _, label := range Labels {
		for _, keyword := range emotionKeywords[label] {
			var gained float64
			switch {
			case containsString(tokens, keyword):
				gained = exactTokenWeight
			case strings.Contains(preprocessed, keyword):
				gained = phraseWeight
			default:
				for _, tok := range tokens {
					if fuzzy.Ratio(keyword, tok) > fuzzyThreshold {
						gained += fuzzyTokenWeight
						break
					}
				}
				if fuzzy.Ratio(keyword, preprocessed) > fuzzyThreshold {
					gained += fuzzyTextWeight
				}
			}
			if gained > 0 {
				scores[label] += gained
				total += gained
			}
		}
	}

	if total > 0 {
		dominant := ""
		best := 0.0
		for _, label := range Labels {
			if s := scores[label]; s > best {
				dominant, best = label, s
			}
		}
		denom := total * 0.5
		if denom < 1.0 {
			denom = 1.0
		}
		confidence := best / denom
		if confidence > 1.0 {
			confidence = 1.0
		}
		return Result{Emotion: dominant, Confidence: confidence}
	}

	if matchesAnyPattern(preprocessed, indirectNegativePatterns) {
		return Result{Emotion: Sad, Confidence: indirectConfidence}
	}
	if matchesAnyPattern(preprocessed, indirectPositivePatterns) {
		return Result{Emotion: Happy, Confidence: indirectConfidence}
	}

	return Result{Emotion: Neutral, Confidence: 0}
}

// Analyze runs detection plus sentiment, keyword, and entity extraction
// in one pass over the message.
func (d *Detector) Analyze(text string) Analysis {
	return Analysis{
		Result:    d.Detect(text),
		Sentiment: d.Sentiment(text),
		Emotions:  d.emotionMentions(text),
		Concerns:  d.ConcernCategories(text),
		Entities:  d.ExtractEntities(text),
	}
}

// Sentiment classifies text as positive/negative/neutral, with very_
// variants when two or more polarity words appear.
func (d *Detector) Sentiment(text string) string {
	tokens := d.tokenize(textutil.Normalize(text))

	pos, neg := 0, 0
	for _, tok := range tokens {
		if containsString(positiveSentimentWords, tok) {
			pos++
		}
		if containsString(negativeSentimentWords, tok) {
			neg++
		}
	}

	switch {
	case pos > neg && pos >= 2:
		return "very_positive"
	case pos > neg:
		return "positive"
	case neg > pos && neg >= 2:
		return "very_negative"
	case neg > pos:
		return "negative"
	}
	return "neutral"
}

// ConcernCategories returns every concern category whose keywords appear
// in the text, in priority order.
func (d *Detector) ConcernCategories(text string) []string {
	preprocessed := textutil.Normalize(text)
	tokens := d.tokenize(preprocessed)

	var out []string
	for _, concern := range ConcernPriority {
		for _, keyword := range concernKeywords[concern] {
			if containsString(tokens, keyword) || strings.Contains(preprocessed, keyword) {
				out = append(out, concern)
				break
			}
		}
	}
	return out
}

// ContextClause maps the highest-priority concern to the phrase spliced
// into empathetic replies. Empty when no concern was detected.
func ContextClause(concerns []string) string {
	clauses := map[string]string{
		ConcernAcademic: " about your studies",
		ConcernSocial:   " in your relationships",
		ConcernSleep:    " and struggling with sleep",
		ConcernFuture:   " about your future",
		ConcernFamily:   " with your family",
		ConcernHealth:   " about your health",
	}
	for _, concern := range ConcernPriority {
		if containsString(concerns, concern) {
			return clauses[concern]
		}
	}
	return ""
}

// ContainsEmotionalLanguage is the aggressive pre-check used by the
// wellbeing stage of the intent cascade.
func (d *Detector) ContainsEmotionalLanguage(text string) bool {
	lower := strings.ToLower(text)
	for _, pattern := range emotionalLanguagePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// ExtractEntities pulls academic, social, time, and intensity words out
// of the message for reply contextualization.
func (d *Detector) ExtractEntities(text string) Entities {
	lower := strings.ToLower(text)

	pick := func(words []string) []string {
		var out []string
		for _, w := range words {
			if strings.Contains(lower, w) {
				out = append(out, w)
			}
		}
		return out
	}

	return Entities{
		Academic:  pick(academicEntityWords),
		Social:    pick(socialEntityWords),
		Time:      pick(timeEntityWords),
		Intensity: pick(intensityEntityWords),
	}
}

// emotionMentions lists every emotion with at least one direct keyword
// hit, in label order.
func (d *Detector) emotionMentions(text string) []string {
	preprocessed := textutil.Normalize(text)
	tokens := d.tokenize(preprocessed)

	var out []string
	for _, label := range Labels {
		for _, keyword := range emotionKeywords[label] {
			if containsString(tokens, keyword) || strings.Contains(preprocessed, keyword) {
				out = append(out, label)
				break
			}
		}
	}
	return out
}

func (d *Detector) tokenize(preprocessed string) []string {
	var out []string
	for _, tok := range textutil.Tokenize(preprocessed) {
		if !stopwords[tok] {
			out = append(out, tok)
		}
	}
	return out
}

// matchesAnyPattern substring-matches multi-word patterns and
// token-matches single words, so "down" does not fire inside
// "download".
func matchesAnyPattern(preprocessed string, patterns []string) bool {
	tokens := strings.Fields(preprocessed)
	for _, p := range patterns {
		if strings.Contains(p, " ") {
			if strings.Contains(preprocessed, p) {
				return true
			}
			continue
		}
		if containsString(tokens, p) {
			return true
		}
	}
	return false
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
