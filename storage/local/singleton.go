package local

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"expense-tracker/storage"
)

// Singleton is a local source storing at most one record as a single JSON
// object under a fixed key.
type Singleton[T any] struct {
	mu    sync.Mutex
	store *Store
	key   string
}

var _ storage.Singleton[storage.UserRecord] = (*Singleton[storage.UserRecord])(nil)

// NewSingleton creates a local singleton source over the given key.
func NewSingleton[T any](store *Store, key string) *Singleton[T] {
	return &Singleton[T]{store: store, key: key}
}

// Load decodes the existing blob, if any, returning a *DecodeError when it
// no longer parses.
func (s *Singleton[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.loadLocked(ctx)
	return err
}

// Reset removes whatever is stored under the key.
func (s *Singleton[T]) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(ctx, s.key)
}

func (s *Singleton[T]) Create(ctx context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked(ctx, item)
}

func (s *Singleton[T]) Read(ctx context.Context) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(ctx)
}

func (s *Singleton[T]) Update(ctx context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("update user: %w", storage.ErrDataNotFound)
	}
	return s.saveLocked(ctx, item)
}

func (s *Singleton[T]) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("delete user: %w", storage.ErrDataNotFound)
	}
	return s.store.Delete(ctx, s.key)
}

func (s *Singleton[T]) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(ctx, s.key)
}

func (s *Singleton[T]) loadLocked(ctx context.Context) (*T, error) {
	blob, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return nil, nil
	}

	var item T
	if err := json.Unmarshal(blob, &item); err != nil {
		return nil, &DecodeError{Key: s.key, Err: err}
	}
	return &item, nil
}

func (s *Singleton[T]) saveLocked(ctx context.Context, item T) error {
	blob, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %q: %w", s.key, err)
	}
	return s.store.Set(ctx, s.key, blob)
}
