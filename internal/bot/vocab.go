package bot

import (
	"strings"

	"github.com/campusflow/campus-assistant-go/internal/textutil"
)

// academicKeywords score +2 when a message token substring-matches one
// in either direction. The list mixes material words, subject names,
// and campus vocabulary so academic requests outrank incidental
// emotional wording.
var academicKeywords = []string{
	"note", "notes", "material", "pdf", "unit", "chapter", "subject", "study", "studying",
	"pyq", "previous year", "past paper", "old paper", "question paper", "exam paper",
	"computer science", "mathematics", "physics", "chemistry", "programming", "coding",
	"algorithm", "data structure", "database", "java", "python", "c++", "javascript",
	"faculty", "teacher", "professor", "timetable", "schedule", "class", "lecture",
}

// academicPhrases score +3 when found as a substring of the message.
var academicPhrases = []string{
	"i need notes", "show me notes", "get notes", "study material", "previous year questions",
	"past papers", "question papers", "exam papers", "computer science notes", "math notes",
	"physics notes", "programming notes", "coding notes", "algorithm notes", "data structure notes",
}

// pyqTriggers decide pyq_request over notes_request once the academic
// score clears the threshold.
var pyqTriggers = []string{"pyq", "previous year", "past paper", "old paper", "question paper"}

// notesTriggers decide notes_request once the academic score clears
// the threshold.
var notesTriggers = []string{"note", "notes", "material", "pdf", "unit", "chapter", "subject"}

// academicThreshold is the minimum score at which a message counts as
// an academic request.
const academicThreshold = 2

// AcademicScore accumulates academic evidence over the message: +2 per
// token that substring-matches an academic keyword in either
// direction, +3 per academic phrase contained in the message.
func AcademicScore(text string) int {
	normalized := textutil.Normalize(text)
	score := 0

	for _, token := range strings.Fields(normalized) {
		for _, keyword := range academicKeywords {
			if strings.Contains(keyword, token) || strings.Contains(token, keyword) {
				score += 2
				break
			}
		}
	}

	for _, phrase := range academicPhrases {
		if strings.Contains(normalized, phrase) {
			score += 3
		}
	}

	return score
}

// HasPYQTrigger reports whether the message contains a question-paper
// trigger term.
func HasPYQTrigger(text string) bool {
	return ContainsAny(textutil.Normalize(text), pyqTriggers)
}

// HasNotesTrigger reports whether the message contains a study-material
// trigger term.
func HasNotesTrigger(text string) bool {
	return ContainsAny(textutil.Normalize(text), notesTriggers)
}

// IsAcademicRequest reports whether the message is an actionable
// academic request: enough academic evidence plus a concrete notes or
// question-paper trigger. The wellbeing pre-check defers to these so
// "I need notes, I'm stressed about exams" still resolves to notes.
func IsAcademicRequest(text string) bool {
	if AcademicScore(text) < academicThreshold {
		return false
	}
	return HasPYQTrigger(text) || HasNotesTrigger(text)
}
