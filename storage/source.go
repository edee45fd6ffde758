package storage

import "context"

// Record is anything a collection source can key by id.
type Record interface {
	Key() string
}

// Collection is the uniform contract realized by every list-shaped backend
// (in-memory, local key-value store, remote document store). All operations
// may suspend on I/O and honor ctx cancellation; none retries.
type Collection[T Record] interface {
	// Create appends a new record to the store.
	Create(ctx context.Context, item T) error

	// ReadAll returns every record in the store.
	ReadAll(ctx context.Context) ([]T, error)

	// Update replaces the stored record(s) whose id matches item's id.
	Update(ctx context.Context, item T) error

	// Delete removes the stored record(s) whose id matches item's id.
	Delete(ctx context.Context, item T) error

	// DeleteAll wipes the store.
	DeleteAll(ctx context.Context) error
}

// Singleton is the contract for the user-details store, which holds at most
// one record at a time.
type Singleton[T any] interface {
	Create(ctx context.Context, item T) error

	// Read returns the stored record, or nil when the store is empty.
	Read(ctx context.Context) (*T, error)

	Update(ctx context.Context, item T) error
	Delete(ctx context.Context) error
	DeleteAll(ctx context.Context) error
}
