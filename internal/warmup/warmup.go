// Package warmup preloads the document store at startup: it seeds the
// default auth records, touches every catalog so missing documents are
// materialized with their empty defaults, and builds the knowledge
// index before the server accepts traffic.
package warmup

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campusflow/campus-assistant-go/internal/auth"
	"github.com/campusflow/campus-assistant-go/internal/knowledge"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/storage"
)

// Stats counts what warmup loaded. Fields are atomic because catalog
// tasks run concurrently.
type Stats struct {
	Subjects  atomic.Int64
	Papers    atomic.Int64
	InfoItems atomic.Int64
	Knowledge atomic.Int64
	Synonyms  atomic.Int64
}

// Options configures warmup behavior.
type Options struct {
	Metrics *metrics.Metrics // optional
}

// Run warms the store and knowledge index. Catalog preloads run
// concurrently; the auth seed runs first so the store always has login
// records before the server starts.
func Run(ctx context.Context, store *storage.Store, authSvc *auth.Service, idx *knowledge.Index, log *logger.Logger, opts Options) (*Stats, error) {
	stats := &Stats{}
	start := time.Now()
	log = log.WithModule("warmup")

	if err := authSvc.EnsureDefaults(ctx); err != nil {
		record(opts.Metrics, "auth", "error")
		return nil, fmt.Errorf("warmup: seed auth records: %w", err)
	}
	record(opts.Metrics, "auth", "success")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		subjects, err := store.Subjects(gctx)
		if err != nil {
			record(opts.Metrics, "subjects", "error")
			return fmt.Errorf("warmup: load subjects: %w", err)
		}
		stats.Subjects.Store(int64(len(subjects)))
		record(opts.Metrics, "subjects", "success")
		return nil
	})

	g.Go(func() error {
		papers, err := store.PastPapers(gctx)
		if err != nil {
			record(opts.Metrics, "pyq", "error")
			return fmt.Errorf("warmup: load past papers: %w", err)
		}
		stats.Papers.Store(int64(len(papers)))
		record(opts.Metrics, "pyq", "success")
		return nil
	})

	g.Go(func() error {
		info, err := store.Info(gctx)
		if err != nil {
			record(opts.Metrics, "info", "error")
			return fmt.Errorf("warmup: load info: %w", err)
		}
		items := 0
		for _, section := range info {
			items += len(section.Items)
		}
		stats.InfoItems.Store(int64(items))
		record(opts.Metrics, "info", "success")
		return nil
	})

	g.Go(func() error {
		synonyms, err := store.Synonyms(gctx)
		if err != nil {
			record(opts.Metrics, "synonyms", "error")
			return fmt.Errorf("warmup: load synonyms: %w", err)
		}
		stats.Synonyms.Store(int64(len(synonyms)))
		record(opts.Metrics, "synonyms", "success")
		return nil
	})

	g.Go(func() error {
		entries, err := store.Knowledge(gctx)
		if err != nil {
			record(opts.Metrics, "knowledge", "error")
			return fmt.Errorf("warmup: load knowledge base: %w", err)
		}
		if err := idx.Rebuild(entries); err != nil {
			record(opts.Metrics, "knowledge", "error")
			return fmt.Errorf("warmup: build knowledge index: %w", err)
		}
		stats.Knowledge.Store(int64(len(entries)))
		record(opts.Metrics, "knowledge", "success")
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	duration := time.Since(start)
	if opts.Metrics != nil {
		opts.Metrics.RecordWarmupDuration(duration.Seconds())
	}

	log.WithFields(map[string]any{
		"subjects":    stats.Subjects.Load(),
		"papers":      stats.Papers.Load(),
		"info_items":  stats.InfoItems.Load(),
		"knowledge":   stats.Knowledge.Load(),
		"synonyms":    stats.Synonyms.Load(),
		"duration_ms": duration.Milliseconds(),
	}).Info("warmup complete")

	return stats, nil
}

func record(m *metrics.Metrics, task, status string) {
	if m != nil {
		m.RecordWarmupTask(task, status)
	}
}
