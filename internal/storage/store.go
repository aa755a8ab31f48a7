// Package storage implements the JSON document store backing all
// curated content, auth records, and chat logs. Every document is one
// file under the data directory; writes go to a temp file and are
// renamed over the target so a crash mid-write never corrupts the live
// document. Missing or corrupt documents load as an empty default
// chosen by a naming convention: mapping-shaped documents (name contains
// "subjects" or "info") default to {}, everything else to [].
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
)

// Document names.
const (
	DocSubjects   = "subjects.json"
	DocInfo       = "info.json"
	DocPYQ        = "pyq.json"
	DocSynonyms   = "synonyms.json"
	DocTemplates  = "reply_templates.json"
	DocKnowledge  = "knowledge_base.json"
	DocUnanswered = "unanswered_queries.json"
	DocFeedback   = "feedback.json"
	DocAdminAuth  = "auth.json"
	DocChatAuth   = "chatbot_auth.json"
)

// ChatsSubdir holds one document per saved chat.
const ChatsSubdir = "chats"

// MetricsRecorder receives store operation counts. Optional.
type MetricsRecorder interface {
	RecordStoreOperation(document, op string)
	RecordStoreCorruption(document string)
}

// Store is the file-backed document store. Per-document read-write
// locks serialize mutation so concurrent read-modify-write cycles do
// not lose updates; concurrent reads of the same document are coalesced.
type Store struct {
	dir     string
	metrics MetricsRecorder

	mu    sync.Mutex
	locks map[string]*sync.RWMutex

	reads singleflight.Group
}

// New creates the data directory (and chats subdirectory) when absent
// and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, domerrors.NewValidationError("dir", "data directory is required")
	}
	if err := os.MkdirAll(filepath.Join(dir, ChatsSubdir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.RWMutex),
	}, nil
}

// SetMetricsRecorder attaches an optional metrics recorder.
func (s *Store) SetMetricsRecorder(m MetricsRecorder) {
	s.metrics = m
}

// Dir returns the root data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) lockFor(name string) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.RWMutex{}
		s.locks[name] = l
	}
	return l
}

// defaultValue picks the empty default for a document by naming
// convention.
func defaultValue(name string) json.RawMessage {
	if strings.Contains(name, "subjects") || strings.Contains(name, "info") {
		return json.RawMessage("{}")
	}
	return json.RawMessage("[]")
}

// Load reads a document and returns its raw JSON. A missing or corrupt
// file yields the document's empty default, never an error.
func (s *Store) Load(ctx context.Context, name string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lock := s.lockFor(name)
	v, err, _ := s.reads.Do(name, func() (any, error) {
		lock.RLock()
		defer lock.RUnlock()
		return s.readLocked(ctx, name), nil
	})
	if err != nil {
		return nil, err
	}
	s.record(name, "load")
	return v.(json.RawMessage), nil
}

func (s *Store) readLocked(ctx context.Context, name string) json.RawMessage {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "failed to read document, using default",
				"document", name,
				"error", err)
		}
		return defaultValue(name)
	}
	if !json.Valid(data) {
		slog.WarnContext(ctx, "corrupt document, using default",
			"document", name)
		if s.metrics != nil {
			s.metrics.RecordStoreCorruption(name)
		}
		return defaultValue(name)
	}
	return data
}

// LoadInto loads a document and unmarshals it into out.
func (s *Store) LoadInto(ctx context.Context, name string, out any) error {
	raw, err := s.Load(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domerrors.NewStoreError(name, "load", err)
	}
	return nil
}

// Save atomically writes a document: marshal, write to a temp file in
// the same directory, then rename over the target.
func (s *Store) Save(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := s.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	return s.writeLocked(ctx, name, v)
}

func (s *Store) writeLocked(ctx context.Context, name string, v any) error {
	start := time.Now()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return domerrors.NewStoreError(name, "save", err)
	}

	target := filepath.Join(s.dir, name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return domerrors.NewStoreError(name, "save", err)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return domerrors.NewStoreError(name, "save", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return domerrors.NewStoreError(name, "save", err)
	}

	if duration := time.Since(start); duration > 100*time.Millisecond {
		slog.WarnContext(ctx, "slow store operation",
			"operation", "Save",
			"document", name,
			"duration_ms", duration.Milliseconds())
	}
	s.record(name, "save")
	return nil
}

// Update runs a read-modify-write cycle under the document's write
// lock, so concurrent updates to the same document cannot lose writes.
// The modify function receives the raw current value and returns the
// value to persist.
func (s *Store) Update(ctx context.Context, name string, modify func(raw json.RawMessage) (any, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := s.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	next, err := modify(s.readLocked(ctx, name))
	if err != nil {
		return err
	}
	return s.writeLocked(ctx, name, next)
}

// Delete removes a document. Missing documents are not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := s.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return domerrors.NewStoreError(name, "delete", err)
	}
	s.record(name, "delete")
	return nil
}

func (s *Store) record(name, op string) {
	if s.metrics != nil {
		s.metrics.RecordStoreOperation(name, op)
	}
}
