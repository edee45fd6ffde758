package local

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"expense-tracker/storage"
)

// DecodeError reports a persisted blob that no longer parses. The
// composition root decides what to do with it (the shipped policy is to log
// and reset to empty rather than surface corruption to the user).
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode collection %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Collection is a local source storing the whole entity family as one JSON
// array under a fixed key. A per-collection mutex serializes the
// read-decode-modify-reencode-write cycle so concurrent mutations can't lose
// each other's snapshot.
type Collection[T storage.Record] struct {
	mu    sync.Mutex
	store *Store
	key   string
}

var _ storage.Collection[storage.ExpenseRecord] = (*Collection[storage.ExpenseRecord])(nil)

// NewCollection creates a local collection over the given key. Call Load to
// verify any existing blob before first use.
func NewCollection[T storage.Record](store *Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Load decodes the existing blob, if any. A corrupt blob returns a
// *DecodeError; the caller chooses between surfacing it and Reset.
func (c *Collection[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.loadLocked(ctx)
	return err
}

// Reset replaces whatever is stored with an empty collection.
func (c *Collection[T]) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.saveLocked(ctx, nil)
}

func (c *Collection[T]) Create(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.loadLocked(ctx)
	if err != nil {
		return err
	}
	return c.saveLocked(ctx, append(items, item))
}

func (c *Collection[T]) ReadAll(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loadLocked(ctx)
}

func (c *Collection[T]) Update(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.loadLocked(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].Key() == item.Key() {
			items[i] = item
			return c.saveLocked(ctx, items)
		}
	}
	return fmt.Errorf("update %q: %w", item.Key(), storage.ErrDataNotFound)
}

func (c *Collection[T]) Delete(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.loadLocked(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].Key() == item.Key() {
			return c.saveLocked(ctx, append(items[:i], items[i+1:]...))
		}
	}
	return fmt.Errorf("delete %q: %w", item.Key(), storage.ErrDataNotFound)
}

func (c *Collection[T]) DeleteAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.saveLocked(ctx, nil)
}

func (c *Collection[T]) loadLocked(ctx context.Context) ([]T, error) {
	blob, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, &DecodeError{Key: c.key, Err: err}
	}
	return items, nil
}

func (c *Collection[T]) saveLocked(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", c.key, err)
	}
	return c.store.Set(ctx, c.key, blob)
}
