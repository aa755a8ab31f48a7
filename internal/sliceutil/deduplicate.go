// Package sliceutil holds small generic slice helpers.
package sliceutil

// Deduplicate drops later occurrences of items sharing a key, keeping
// the original order. Used to collapse repeated catalog keywords after
// normalization.
//
//	unique := sliceutil.Deduplicate(keywords, func(kw string) string { return kw })
func Deduplicate[T any, K comparable](items []T, keyFunc func(T) K) []T {
	if len(items) == 0 {
		return items
	}

	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		key := keyFunc(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
