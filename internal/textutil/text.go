// Package textutil provides text normalization utilities for the chat pipeline.
package textutil

import (
	"strings"
	"unicode"
)

// Normalize lowercases and trims a message and strips every character
// except letters, digits, whitespace, and the sentence marks !?.,
// Runs of whitespace collapse to a single space.
//
// Example:
//
//	Normalize("  Where are the DBMS notes??  ") returns "where are the dbms notes??"
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case r == '!' || r == '?' || r == '.' || r == ',':
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// Tokenize normalizes a message and splits it into lowercase word tokens.
// Sentence marks are dropped, so "notes?" and "notes" tokenize identically.
func Tokenize(s string) []string {
	normalized := Normalize(s)
	if normalized == "" {
		return nil
	}

	stripped := strings.Map(func(r rune) rune {
		if r == '!' || r == '?' || r == '.' || r == ',' {
			return ' '
		}
		return r
	}, normalized)

	fields := strings.Fields(stripped)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// ContainsToken reports whether want appears as a whole token in s.
// Both sides are normalized, so matching is case- and punctuation-insensitive.
func ContainsToken(s, want string) bool {
	if want == "" {
		return false
	}
	target := Normalize(want)
	for _, tok := range Tokenize(s) {
		if tok == target {
			return true
		}
	}
	return false
}

// SplitSentences splits text on the sentence terminators .!? and returns
// the non-empty trimmed sentences. Terminators are not kept.
func SplitSentences(text string) []string {
	var out []string
	var cur strings.Builder

	flush := func() {
		s := strings.TrimSpace(cur.String())
		if s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()

	return out
}

// CountSentences counts the sentences in text as SplitSentences sees them.
func CountSentences(text string) int {
	return len(SplitSentences(text))
}
