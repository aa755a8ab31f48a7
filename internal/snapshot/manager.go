package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/objstore"
)

// ErrNotFound indicates no archive exists in object storage.
var ErrNotFound = errors.New("snapshot: not found")

// Config holds backup manager configuration.
type Config struct {
	// Prefix is prepended to every object key (e.g. "backups/").
	Prefix string
	// Interval is how often the periodic loop uploads an archive.
	Interval time.Duration
	// LockTTL is the leader lock lifetime. Defaults to three times the
	// interval when zero.
	LockTTL time.Duration
}

// Manager uploads and restores data directory archives.
type Manager struct {
	client  *objstore.Client
	dataDir string
	cfg     Config
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// New creates a backup manager for the given data directory.
func New(client *objstore.Client, dataDir string, cfg Config, log *logger.Logger, m *metrics.Metrics) *Manager {
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 3 * cfg.Interval
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 15 * time.Minute
	}
	return &Manager{
		client:  client,
		dataDir: dataDir,
		cfg:     cfg,
		logger:  log.WithModule("snapshot"),
		metrics: m,
	}
}

func (m *Manager) archiveKey() string {
	return m.cfg.Prefix + "data.tar.zst"
}

func (m *Manager) lockKey() string {
	return m.cfg.Prefix + "locks/backup.json"
}

// Backup archives the data directory and uploads it, replacing the
// previous archive. Returns the ETag of the uploaded object.
func (m *Manager) Backup(ctx context.Context) (string, error) {
	start := time.Now()

	var buf bytes.Buffer
	size, err := WriteArchive(m.dataDir, &buf)
	if err != nil {
		m.record("error", start, -1)
		return "", err
	}

	etag, err := m.client.Upload(ctx, m.archiveKey(), &buf, "application/zstd")
	if err != nil {
		m.record("error", start, -1)
		return "", fmt.Errorf("snapshot: upload archive: %w", err)
	}

	m.record("success", start, size)
	m.logger.WithFields(map[string]any{
		"key":         m.archiveKey(),
		"etag":        etag,
		"size_bytes":  size,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("data directory backed up")
	return etag, nil
}

// Restore downloads the latest archive and unpacks it into the data
// directory. Returns ErrNotFound when no archive has been uploaded yet.
func (m *Manager) Restore(ctx context.Context) error {
	body, etag, err := m.client.Download(ctx, m.archiveKey())
	if err != nil {
		if errors.Is(err, objstore.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("snapshot: download archive: %w", err)
	}
	defer body.Close()

	if err := ExtractArchive(body, m.dataDir); err != nil {
		return err
	}

	m.logger.WithFields(map[string]any{
		"key":  m.archiveKey(),
		"etag": etag,
	}).Info("data directory restored from archive")
	return nil
}

// RestoreIfEmpty restores only when the data directory holds no
// documents, so a redeployed instance picks up where the last backup
// left off without clobbering live local data. Returns true when a
// restore ran.
func (m *Manager) RestoreIfEmpty(ctx context.Context) (bool, error) {
	empty, err := dirHasNoDocuments(m.dataDir)
	if err != nil {
		return false, fmt.Errorf("snapshot: inspect data dir: %w", err)
	}
	if !empty {
		return false, nil
	}

	if err := m.Restore(ctx); err != nil {
		if errors.Is(err, ErrNotFound) {
			m.logger.Info("no archive in object storage, starting fresh")
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Run uploads an archive every interval until ctx is canceled. Each
// cycle takes the leader lock first; losing the race just skips the
// cycle, another instance has it covered.
func (m *Manager) Run(ctx context.Context) {
	if m.cfg.Interval <= 0 {
		m.logger.Warn("backup interval not set, periodic backups disabled")
		return
	}

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	m.logger.WithField("interval", m.cfg.Interval.String()).Info("periodic backups started")

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("periodic backups stopped")
			return
		case <-ticker.C:
			m.backupOnce(ctx)
		}
	}
}

func (m *Manager) backupOnce(ctx context.Context) {
	lock := objstore.NewLock(m.client, m.lockKey(), m.cfg.LockTTL)
	acquired, err := lock.Acquire(ctx)
	if err != nil {
		m.logger.WithError(err).Warn("backup lock acquire failed")
		return
	}
	if !acquired {
		m.logger.Debug("backup lock held elsewhere, skipping cycle")
		m.record("skipped", time.Now(), -1)
		return
	}
	defer func() {
		if err := lock.Release(ctx); err != nil {
			m.logger.WithError(err).Warn("backup lock release failed")
		}
	}()

	if _, err := m.Backup(ctx); err != nil {
		m.logger.WithError(err).Error("periodic backup failed")
	}
}

func (m *Manager) record(status string, start time.Time, size int64) {
	if m.metrics == nil {
		return
	}
	m.metrics.RecordSnapshot(status, time.Since(start).Seconds(), size)
}

func dirHasNoDocuments(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			return false, nil
		}
	}
	return true, nil
}
