// Package firestore provides data sources backed by a per-user document
// store in the cloud. Each record is one document in a sub-collection under
// users/{userId}; the document fields match the storage record schema
// exactly.
package firestore

import (
	"context"
	"encoding/json"
	"fmt"

	cf "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"expense-tracker/storage"
)

// Sub-collection names under users/{userId}.
const (
	CollectionExpenses    = "expenses"
	CollectionIncomes     = "incomes"
	CollectionUserDetails = "user_details"
)

// Collection is a remote source over one per-user sub-collection.
type Collection[T storage.Record] struct {
	client *cf.Client
	userID string
	name   string
}

var _ storage.Collection[storage.ExpenseRecord] = (*Collection[storage.ExpenseRecord])(nil)

// NewCollection creates a remote collection source scoped to one user.
func NewCollection[T storage.Record](client *cf.Client, userID, name string) *Collection[T] {
	return &Collection[T]{client: client, userID: userID, name: name}
}

func (c *Collection[T]) col() *cf.CollectionRef {
	return c.client.Collection("users").Doc(c.userID).Collection(c.name)
}

func (c *Collection[T]) Create(ctx context.Context, item T) error {
	doc, err := encodeDocument(item)
	if err != nil {
		return err
	}
	_, _, err = c.col().Add(ctx, doc)
	return err
}

func (c *Collection[T]) ReadAll(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	iter := c.col().Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		// A document that no longer decodes likely means a schema mismatch
		// with another device; surface it instead of dropping the record.
		item, err := decodeDocument[T](snap.Data())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Collection[T]) Update(ctx context.Context, item T) error {
	doc, err := encodeDocument(item)
	if err != nil {
		return err
	}

	snaps, err := c.matches(ctx, item.Key())
	if err != nil {
		return err
	}
	for _, snap := range snaps {
		if _, err := snap.Ref.Set(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, item T) error {
	snaps, err := c.matches(ctx, item.Key())
	if err != nil {
		return err
	}
	for _, snap := range snaps {
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collection[T]) DeleteAll(ctx context.Context) error {
	iter := c.col().Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return err
		}
	}
}

// matches returns every document whose id field equals key. The field is
// logically unique but duplicates are tolerated rather than assumed away.
func (c *Collection[T]) matches(ctx context.Context, key string) ([]*cf.DocumentSnapshot, error) {
	return c.col().Where("id", "==", key).Documents(ctx).GetAll()
}

// encodeDocument converts a record into the generic field map the document
// store expects. Structured-encode to bytes first, then deserialize into the
// map, so the record's own serialization stays the single source of field
// names.
func encodeDocument(item any) (map[string]any, error) {
	blob, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", storage.ErrInvalidData)
	}
	var doc map[string]any
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("encode record: %w", storage.ErrInvalidData)
	}
	return doc, nil
}

func decodeDocument[T any](doc map[string]any) (T, error) {
	var item T
	blob, err := json.Marshal(doc)
	if err != nil {
		return item, fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(blob, &item); err != nil {
		return item, fmt.Errorf("decode document: %w", err)
	}
	return item, nil
}
