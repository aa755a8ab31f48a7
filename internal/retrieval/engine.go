package retrieval

import (
	"context"
	"strings"

	"github.com/campusflow/campus-assistant-go/internal/config"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/storage"
	"github.com/campusflow/campus-assistant-go/internal/synonym"
	"github.com/campusflow/campus-assistant-go/internal/textutil"
)

// Engine runs scored searches over the stored catalogs. Catalogs are
// re-read per search so admin edits are visible immediately.
type Engine struct {
	store      *storage.Store
	policy     string
	maxResults int
	logger     *logger.Logger
}

// NewEngine creates an Engine using the pipeline's info policy and
// result cap.
func NewEngine(store *storage.Store, cfg config.PipelineConfig, log *logger.Logger) *Engine {
	return &Engine{
		store:      store,
		policy:     cfg.InfoMatchPolicy,
		maxResults: cfg.MaxResults,
		logger:     log.WithModule("retrieval"),
	}
}

// expandedQuery normalizes the query and appends synonym expansions
// from the curated overlay on top of the built-in table.
func (e *Engine) expandedQuery(ctx context.Context, query string) string {
	curated, err := e.store.Synonyms(ctx)
	if err != nil {
		e.logger.WithError(err).Warn("failed to load curated synonyms")
		curated = nil
	}
	tokens := synonym.NewExpander(curated).ExpandQuery(query)
	return strings.Join(tokens, " ")
}

// Notes searches study materials.
func (e *Engine) Notes(ctx context.Context, query string) ([]NoteResult, error) {
	subjects, err := e.store.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	results := scoreNotes(subjects, e.expandedQuery(ctx, query))
	return capResults(results, e.maxResults), nil
}

// SubjectsOverview returns subject names with their unit counts, for
// bare notes requests with no searchable terms.
func (e *Engine) SubjectsOverview(ctx context.Context) (map[string]int, error) {
	subjects, err := e.store.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	overview := make(map[string]int, len(subjects))
	for name, subject := range subjects {
		overview[name] = len(subject.Units)
	}
	return overview, nil
}

// Papers searches the question-paper catalog.
func (e *Engine) Papers(ctx context.Context, query string) ([]PaperResult, error) {
	papers, err := e.store.PastPapers(ctx)
	if err != nil {
		return nil, err
	}
	results := scorePapers(papers, e.expandedQuery(ctx, query))
	return capResults(results, e.maxResults), nil
}

// PapersOverview returns paper counts grouped by type, for bare
// question-paper requests.
func (e *Engine) PapersOverview(ctx context.Context) (map[string]int, error) {
	papers, err := e.store.PastPapers(ctx)
	if err != nil {
		return nil, err
	}
	overview := make(map[string]int)
	for _, paper := range papers {
		key := paper.Type
		if key == "" {
			key = "Others"
		}
		overview[key]++
	}
	return overview, nil
}

// Info searches the campus-info catalog under the configured policy.
func (e *Engine) Info(ctx context.Context, query string) ([]InfoResult, error) {
	info, err := e.store.Info(ctx)
	if err != nil {
		return nil, err
	}
	var results []InfoResult
	if e.policy == config.InfoPolicyPermissive {
		results = scoreInfoPermissive(info, e.expandedQuery(ctx, query))
	} else {
		// Exact matching compares whole queries, so synonym expansion
		// does not apply.
		results = scoreInfoExact(info, textutil.Normalize(query))
	}
	return capResults(results, e.maxResults), nil
}

// InfoPermissive searches the campus-info catalog with weighted field
// scoring regardless of the configured policy. The terminal fallback
// uses it so near-miss queries still surface curated content.
func (e *Engine) InfoPermissive(ctx context.Context, query string) ([]InfoResult, error) {
	info, err := e.store.Info(ctx)
	if err != nil {
		return nil, err
	}
	results := scoreInfoPermissive(info, e.expandedQuery(ctx, query))
	return capResults(results, e.maxResults), nil
}

func capResults[T any](results []T, limit int) []T {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
