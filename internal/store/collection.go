package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrUnsynced signals that a mutation was applied in memory but the backing
// write failed. The in-memory state stays authoritative and the collection is
// flagged dirty until the next successful write.
var ErrUnsynced = errors.New("collection not persisted")

// Collection binds one record type to its namespace and serialises access to
// it. All mutations go through ReplaceAll, keeping the single-writer,
// replace-the-whole-namespace contract of the underlying store.
//
// Loading is fail-open: an absent or undecodable namespace yields an empty
// collection and a warning log rather than an error. The data is non-critical
// and an error here would take the whole feature down with it.
type Collection[T any] struct {
	store     Store
	namespace string
	logger    *zap.Logger

	mu      sync.Mutex
	records []T
	loaded  bool
	dirty   bool
}

// NewCollection creates a collection over the given namespace.
func NewCollection[T any](s Store, namespace string, logger *zap.Logger) *Collection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection[T]{store: s, namespace: namespace, logger: logger}
}

// LoadAll returns a copy of the current records, reading the namespace on
// first use. Deserialization failures are logged and degrade to an empty
// collection.
func (c *Collection[T]) LoadAll(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// ReplaceAll swaps the in-memory collection and persists it with a single
// write. On persistence failure the new records are kept, the collection is
// marked dirty, and ErrUnsynced is returned; the caller surfaces this as a
// transient notice without rolling back.
func (c *Collection[T]) ReplaceAll(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = records
	c.loaded = true
	return c.saveLocked(ctx)
}

// Update applies mutate to the records and persists the result, all under one
// lock acquisition. Mutations must go through here when they derive from the
// current records: splitting the cycle into LoadAll and ReplaceAll would let
// two concurrent writers read the same snapshot and lose one of the updates.
// mutate reports whether it changed anything; nothing is written when it
// returns false.
func (c *Collection[T]) Update(ctx context.Context, mutate func(records []T) ([]T, bool)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	records, changed := mutate(c.records)
	if !changed {
		return nil
	}
	c.records = records
	return c.saveLocked(ctx)
}

func (c *Collection[T]) saveLocked(ctx context.Context) error {
	payload, err := json.Marshal(c.records)
	if err != nil {
		c.dirty = true
		c.logger.Error("marshal collection failed",
			zap.String("namespace", c.namespace), zap.Error(err))
		return ErrUnsynced
	}
	if err := c.store.Save(ctx, c.namespace, payload); err != nil {
		c.dirty = true
		c.logger.Error("persist collection failed",
			zap.String("namespace", c.namespace), zap.Error(err))
		return ErrUnsynced
	}
	c.dirty = false
	return nil
}

// Dirty reports whether the in-memory state has diverged from the persisted
// namespace because of a failed write.
func (c *Collection[T]) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

func (c *Collection[T]) ensureLoaded(ctx context.Context) {
	if c.loaded {
		return
	}
	c.loaded = true

	payload, found, err := c.store.Load(ctx, c.namespace)
	if err != nil {
		c.logger.Warn("load collection failed, starting empty",
			zap.String("namespace", c.namespace), zap.Error(err))
		return
	}
	if !found || len(payload) == 0 {
		return
	}

	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		c.logger.Warn("decode collection failed, starting empty",
			zap.String("namespace", c.namespace), zap.Error(err))
		return
	}
	c.records = records
}
