package bot

import "strings"

// ContainsAny reports whether text contains any of the terms as a
// substring. Callers normalize text first; terms are stored lowercase.
func ContainsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
