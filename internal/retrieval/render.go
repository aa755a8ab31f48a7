package retrieval

import "strings"

const infoSeparator = "\n\n---\n\n"

// ContentPendingMessage replaces an answer whose every matched item has
// placeholder content.
const ContentPendingMessage = "The content for this topic is being updated. Please check back soon!"

var placeholderContents = map[string]bool{
	"":            true,
	"...":         true,
	"-":           true,
	"tbd":         true,
	"n/a":         true,
	"na":          true,
	"pending":     true,
	"coming soon": true,
}

// RenderInfo formats matched info items into one answer, content only,
// separated by a horizontal rule. Items with empty or placeholder
// content are dropped; if that empties a non-empty result set the
// pending notice is returned instead. ok is false only when there were
// no results at all.
func RenderInfo(results []InfoResult) (message string, ok bool) {
	if len(results) == 0 {
		return "", false
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		content := strings.TrimSpace(r.Content)
		if placeholderContents[strings.ToLower(content)] {
			continue
		}
		parts = append(parts, content)
	}
	if len(parts) == 0 {
		return ContentPendingMessage, true
	}

	return strings.TrimSpace(strings.Join(parts, infoSeparator)), true
}
