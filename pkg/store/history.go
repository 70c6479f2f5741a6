package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/foomo/showcase/content"
	"github.com/foomo/showcase/pkg/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	historyBackupPrefix = "backup-"
	historySuffix       = ".json"
	// sortable in lexical order, unlike time.RFC3339Nano
	historyTimeFormat = "20060102T150405.000000000Z"
)

type (
	// History persists the current document of each collection and keeps
	// a bounded number of timestamped backups next to it.
	History struct {
		l       *zap.Logger
		storage Storage
		limit   int
		now     func() time.Time
		mu      sync.RWMutex
	}
	HistoryOption func(*History)
)

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

// HistoryWithLimit sets the number of backups kept per collection
func HistoryWithLimit(v int) HistoryOption {
	return func(o *History) {
		o.limit = v
	}
}

func historyWithClock(fn func() time.Time) HistoryOption {
	return func(o *History) {
		o.now = fn
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func NewHistory(l *zap.Logger, storage Storage, opts ...HistoryOption) *History {
	inst := &History{
		l:       l.Named("history"),
		storage: storage,
		limit:   2,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(inst)
	}
	if inst.limit < 0 {
		inst.limit = 0
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Add writes data as the current document of collection and keeps a copy as backup
func (h *History) Add(ctx context.Context, collection content.Collection, data []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	backupKey := backupPrefix(collection) + h.now().UTC().Format(historyTimeFormat) + historySuffix
	h.l.Debug("writing files",
		zap.String("storage", h.storage.Name()),
		zap.String("backup", backupKey),
		zap.String("current", currentKey(collection)),
	)

	if err := h.storage.Write(ctx, currentKey(collection), data); err != nil {
		return errors.Wrap(err, "failed to write current document")
	}

	// a lost backup must not fail the write that produced it
	if err := h.storage.Write(ctx, backupKey, data); err != nil {
		h.l.Error("could not persist backup", zap.String("backup", backupKey), zap.Error(err))
		metrics.HistoryPersistFailedCounter.WithLabelValues(string(collection)).Inc()
		return nil
	}
	if err := h.cleanup(ctx, collection); err != nil {
		h.l.Warn("failed to clean up history", zap.String("collection", string(collection)), zap.Error(err))
	}
	return nil
}

// Current returns the current document of collection.
// Returns os.ErrNotExist if nothing was written yet.
func (h *History) Current(ctx context.Context, collection content.Collection) ([]byte, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.storage.Read(ctx, currentKey(collection))
}

// Close releases the underlying storage
func (h *History) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.storage.Close()
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func currentKey(collection content.Collection) string {
	return string(collection) + historySuffix
}

func backupPrefix(collection content.Collection) string {
	return historyBackupPrefix + string(collection) + "-"
}

// backups returns the backup keys of collection, newest first
func (h *History) backups(ctx context.Context, collection content.Collection) ([]string, error) {
	keys, err := h.storage.List(ctx, backupPrefix(collection))
	if err != nil {
		return nil, err
	}
	var files []string
	for _, key := range keys {
		if strings.HasSuffix(key, historySuffix) {
			files = append(files, key)
		}
	}
	return files, nil
}

func (h *History) cleanup(ctx context.Context, collection content.Collection) error {
	files, err := h.backups(ctx, collection)
	if err != nil {
		return errors.Wrap(err, "could not list backups")
	}
	if len(files) <= h.limit {
		return nil
	}
	for _, f := range files[h.limit:] {
		h.l.Debug("removing outdated backup", zap.String("file", f))
		if err := h.storage.Delete(ctx, f); err != nil {
			return errors.Wrapf(err, "could not remove backup %s", f)
		}
	}
	return nil
}
