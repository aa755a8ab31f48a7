// Package fuzzy implements Ratcliff/Obershelp similarity scoring on a
// 0-100 scale, used for approximate matching of catalog names, synonym
// keys, and knowledge-base questions.
package fuzzy

import "strings"

// Ratio returns the Ratcliff/Obershelp similarity between a and b as an
// integer in [0, 100]. The score is 2*M/T where M is the total length of
// matching blocks and T the combined length of both strings.
func Ratio(a, b string) int {
	if a == "" && b == "" {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	matched := matchingLength(ra, rb)

	return (200*matched + total/2) / total
}

// PartialRatio returns the best Ratio between the shorter string and any
// equally long window of the longer string. It rewards a short query that
// appears inside a longer catalog entry.
func PartialRatio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		if len(rb) == 0 {
			return 100
		}
		return 0
	}

	best := 0
	for start := 0; start+len(ra) <= len(rb); start++ {
		window := string(rb[start : start+len(ra)])
		if score := Ratio(string(ra), window); score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// Match pairs a candidate string with its similarity score.
type Match struct {
	Value string
	Score int
}

// BestMatch returns the candidate with the highest Ratio against query
// that meets minScore. Case is ignored. The second return is false when
// no candidate qualifies. Ties keep the earliest candidate.
func BestMatch(query string, candidates []string, minScore int) (Match, bool) {
	q := strings.ToLower(query)

	best := Match{}
	found := false
	for _, c := range candidates {
		score := Ratio(q, strings.ToLower(c))
		if score >= minScore && (!found || score > best.Score) {
			best = Match{Value: c, Score: score}
			found = true
		}
	}
	return best, found
}

// matchingLength sums the lengths of the matching blocks between a and b,
// recursing into the unmatched regions on either side of the longest
// common substring.
func matchingLength(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingLength(a[:ai], b[:bi]) +
		matchingLength(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the longest common substring of a and b,
// returning its start in each plus its length. Earlier positions win ties.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// lengths[j] holds the common suffix length ending at a[i-1], b[j-1]
	// from the previous row of the DP table.
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i-1] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > size {
					size = lengths[j]
					ai = i - size
					bi = j - size
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}
