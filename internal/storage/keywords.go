package storage

import (
	"strings"

	"github.com/campusflow/campus-assistant-go/internal/sliceutil"
)

// normalizeKeywords lowercases, trims, and drops empty or duplicate
// keywords. Catalog keyword sets are unique lowercase non-empty
// strings by invariant.
func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return sliceutil.Deduplicate(out, func(kw string) string { return kw })
}

// SplitKeywords parses an admin-supplied comma-separated keyword string
// into a normalized keyword list.
func SplitKeywords(raw string) []string {
	return normalizeKeywords(strings.Split(raw, ","))
}
