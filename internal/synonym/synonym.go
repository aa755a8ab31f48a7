// Package synonym expands query tokens through a bidirectional term map.
// A token matches an entry when it equals the canonical key or any of the
// key's synonyms; a match contributes the key and its whole synonym list.
package synonym

import (
	"github.com/campusflow/campus-assistant-go/internal/textutil"
)

// Defaults returns the built-in synonym map used when the admin store has
// no curated entries. Callers get a fresh copy and may mutate it.
func Defaults() map[string][]string {
	return map[string][]string{
		"dbms":     {"database management system", "database", "db"},
		"cs":       {"computer science", "comp sci"},
		"java":     {"programming", "coding", "oop"},
		"notes":    {"note", "material", "study material", "unit", "chapter"},
		"exam":     {"test", "examination", "quiz", "exm", "exams", "tests"},
		"faculty":  {"teacher", "professor", "staff", "instructor", "sir", "madam"},
		"schedule": {"timetable", "time", "timing", "class", "period"},
		"pyq":      {"previous year question", "old question", "past paper", "question paper"},
	}
}

// Expander resolves tokens against a merged default plus curated map.
type Expander struct {
	mapping map[string][]string
}

// NewExpander builds an Expander from the defaults overlaid with curated
// entries. A curated key replaces the default list for that key.
func NewExpander(curated map[string][]string) *Expander {
	mapping := Defaults()
	for key, syns := range curated {
		list := make([]string, len(syns))
		copy(list, syns)
		mapping[key] = list
	}
	return &Expander{mapping: mapping}
}

// Expand returns the token plus, for every map entry it matches, the
// canonical key and that key's full synonym list. No duplicates; the
// token itself comes first.
func (e *Expander) Expand(token string) []string {
	out := []string{token}
	seen := map[string]bool{token: true}

	add := func(term string) {
		if !seen[term] {
			seen[term] = true
			out = append(out, term)
		}
	}

	for key, syns := range e.mapping {
		if !e.matches(token, key, syns) {
			continue
		}
		add(key)
		for _, s := range syns {
			add(s)
		}
	}
	return out
}

// ExpandQuery tokenizes the query and expands every token. The result is
// de-duplicated and keeps the original token order ahead of expansions.
func (e *Expander) ExpandQuery(query string) []string {
	tokens := textutil.Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var out []string
	seen := make(map[string]bool, len(tokens))

	add := func(term string) {
		if !seen[term] {
			seen[term] = true
			out = append(out, term)
		}
	}

	for _, tok := range tokens {
		add(tok)
	}
	for _, tok := range tokens {
		for key, syns := range e.mapping {
			if !e.matches(tok, key, syns) {
				continue
			}
			add(key)
			for _, s := range syns {
				add(s)
			}
		}
	}
	return out
}

func (e *Expander) matches(token, key string, syns []string) bool {
	if token == key {
		return true
	}
	for _, s := range syns {
		if token == s {
			return true
		}
	}
	return false
}
