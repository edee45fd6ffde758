// Package memory provides process-local data sources backed by plain Go
// values. Nothing persists across restarts; they exist for previews and
// tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"expense-tracker/storage"
)

// Collection is an ordered, mutex-guarded in-memory source.
type Collection[T storage.Record] struct {
	mu    sync.Mutex
	items []T
}

var _ storage.Collection[storage.ExpenseRecord] = (*Collection[storage.ExpenseRecord])(nil)

// NewCollection creates an in-memory collection seeded with the given
// records.
func NewCollection[T storage.Record](seed ...T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{items: items}
}

func (c *Collection[T]) Create(_ context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
	return nil
}

func (c *Collection[T]) ReadAll(_ context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Copy out so callers can't mutate the backing slice
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items, nil
}

func (c *Collection[T]) Update(_ context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Key() == item.Key() {
			c.items[i] = item
			return nil
		}
	}
	return fmt.Errorf("update %q: %w", item.Key(), storage.ErrDataNotFound)
}

func (c *Collection[T]) Delete(_ context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Key() == item.Key() {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete %q: %w", item.Key(), storage.ErrDataNotFound)
}

func (c *Collection[T]) DeleteAll(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	return nil
}

// Singleton is an in-memory source holding at most one record.
type Singleton[T any] struct {
	mu   sync.Mutex
	item *T
}

var _ storage.Singleton[storage.UserRecord] = (*Singleton[storage.UserRecord])(nil)

// NewSingleton creates an in-memory singleton source, optionally seeded.
func NewSingleton[T any](seed *T) *Singleton[T] {
	s := &Singleton[T]{}
	if seed != nil {
		item := *seed
		s.item = &item
	}
	return s
}

func (s *Singleton[T]) Create(_ context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.item = &item
	return nil
}

func (s *Singleton[T]) Read(_ context.Context) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.item == nil {
		return nil, nil
	}
	item := *s.item
	return &item, nil
}

func (s *Singleton[T]) Update(_ context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.item == nil {
		return fmt.Errorf("update user: %w", storage.ErrDataNotFound)
	}
	s.item = &item
	return nil
}

func (s *Singleton[T]) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.item == nil {
		return fmt.Errorf("delete user: %w", storage.ErrDataNotFound)
	}
	s.item = nil
	return nil
}

func (s *Singleton[T]) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.item = nil
	return nil
}
