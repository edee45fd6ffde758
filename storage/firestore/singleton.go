package firestore

import (
	"context"

	cf "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"expense-tracker/storage"
)

// Singleton is a remote source over the user_details sub-collection, which
// holds at most one document per account.
type Singleton[T any] struct {
	client *cf.Client
	userID string
	name   string
}

var _ storage.Singleton[storage.UserRecord] = (*Singleton[storage.UserRecord])(nil)

// NewSingleton creates a remote singleton source scoped to one user.
func NewSingleton[T any](client *cf.Client, userID, name string) *Singleton[T] {
	return &Singleton[T]{client: client, userID: userID, name: name}
}

func (s *Singleton[T]) col() *cf.CollectionRef {
	return s.client.Collection("users").Doc(s.userID).Collection(s.name)
}

func (s *Singleton[T]) Create(ctx context.Context, item T) error {
	doc, err := encodeDocument(item)
	if err != nil {
		return err
	}
	_, _, err = s.col().Add(ctx, doc)
	return err
}

func (s *Singleton[T]) Read(ctx context.Context) (*T, error) {
	snaps, err := s.col().Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, nil
	}
	item, err := decodeDocument[T](snaps[0].Data())
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces every stored document with the given record. The store
// should only ever hold one, but duplicates are updated rather than assumed
// away.
func (s *Singleton[T]) Update(ctx context.Context, item T) error {
	doc, err := encodeDocument(item)
	if err != nil {
		return err
	}

	snaps, err := s.col().Documents(ctx).GetAll()
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

func (s *Singleton[T]) Delete(ctx context.Context) error {
	return s.deleteAll(ctx)
}

func (s *Singleton[T]) DeleteAll(ctx context.Context) error {
	return s.deleteAll(ctx)
}

func (s *Singleton[T]) deleteAll(ctx context.Context) error {
	iter := s.col().Documents(ctx)
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
