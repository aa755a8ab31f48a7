// Package knowledge matches free-form questions against the curated
// question/answer knowledge base. A BM25 index pre-ranks stored
// questions so the fuzzy acceptance pass only scans a bounded
// candidate list.
package knowledge

import (
	"fmt"
	"sort"
	"sync"

	"github.com/crawlab-team/bm25"

	"github.com/campusflow/campus-assistant-go/internal/fuzzy"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/storage"
	"github.com/campusflow/campus-assistant-go/internal/textutil"
)

const (
	// acceptScore is the fuzzy ratio a stored question must reach
	// against the query before its answer is returned.
	acceptScore = 75

	// candidateLimit bounds the fuzzy pass to the top BM25 hits.
	candidateLimit = 10
)

// Index is a rebuildable in-memory index over knowledge-base questions.
type Index struct {
	logger *logger.Logger

	mu          sync.RWMutex
	okapi       *bm25.BM25Okapi
	entries     []storage.KnowledgeEntry
	initialized bool
}

// NewIndex creates an empty index. Rebuild must run before Lookup
// returns matches.
func NewIndex(log *logger.Logger) *Index {
	return &Index{logger: log.WithModule("knowledge")}
}

func tokenize(s string) []string {
	return textutil.Tokenize(s)
}

// Rebuild replaces the index contents. BM25 needs the whole corpus for
// IDF, so updates always rebuild from scratch.
func (idx *Index) Rebuild(entries []storage.KnowledgeEntry) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.entries = entries
	idx.okapi = nil
	idx.initialized = true

	if len(entries) == 0 {
		return nil
	}

	corpus := make([]string, len(entries))
	for i, e := range entries {
		corpus[i] = textutil.Normalize(e.Question)
	}

	okapi, err := bm25.NewBM25Okapi(corpus, tokenize, 1.5, 0.75, nil)
	if err != nil {
		return fmt.Errorf("failed to build knowledge index: %w", err)
	}
	idx.okapi = okapi

	idx.logger.WithField("entries", len(entries)).Debug("knowledge index rebuilt")
	return nil
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Lookup returns the best-matching entry for a query, or false when no
// stored question is close enough.
func (idx *Index) Lookup(query string) (storage.KnowledgeEntry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if !idx.initialized || len(idx.entries) == 0 {
		return storage.KnowledgeEntry{}, false
	}

	normalized := textutil.Normalize(query)
	if normalized == "" {
		return storage.KnowledgeEntry{}, false
	}

	best := storage.KnowledgeEntry{}
	bestScore := 0
	for _, i := range idx.candidates(normalized) {
		score := fuzzy.Ratio(normalized, textutil.Normalize(idx.entries[i].Question))
		if score > acceptScore && score > bestScore {
			best = idx.entries[i]
			bestScore = score
		}
	}
	if bestScore == 0 {
		return storage.KnowledgeEntry{}, false
	}
	return best, true
}

// candidates returns entry indices for the fuzzy pass: the top BM25
// hits when the index scores anything, otherwise every entry.
func (idx *Index) candidates(normalized string) []int {
	all := make([]int, len(idx.entries))
	for i := range idx.entries {
		all[i] = i
	}
	if idx.okapi == nil {
		return all
	}

	tokens := tokenize(normalized)
	if len(tokens) == 0 {
		return all
	}
	scores, err := idx.okapi.GetScores(tokens)
	if err != nil {
		idx.logger.WithError(err).Warn("knowledge index scoring failed, scanning all entries")
		return all
	}

	type scored struct {
		i     int
		score float64
	}
	ranked := make([]scored, 0, len(scores))
	for i, s := range scores {
		if s > 0 {
			ranked = append(ranked, scored{i: i, score: s})
		}
	}
	if len(ranked) == 0 {
		return all
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].score != ranked[b].score {
			return ranked[a].score > ranked[b].score
		}
		return ranked[a].i < ranked[b].i
	})
	if len(ranked) > candidateLimit {
		ranked = ranked[:candidateLimit]
	}

	out := make([]int, len(ranked))
	for i, r := range ranked {
		out[i] = r.i
	}
	return out
}
