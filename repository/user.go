package repository

import (
	"context"

	"expense-tracker/models"
	"expense-tracker/storage"
)

// UserRepository exposes the singular user record in domain terms.
type UserRepository struct {
	source storage.Singleton[storage.UserRecord]
}

func NewUserRepository(source storage.Singleton[storage.UserRecord]) *UserRepository {
	return &UserRepository{source: source}
}

// Fetch returns the stored user, or nil when no account details are stored.
func (r *UserRepository) Fetch(ctx context.Context) (*models.User, error) {
	record, err := r.source.Read(ctx)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	user := userFromRecord(*record)
	return &user, nil
}

func (r *UserRepository) Save(ctx context.Context, user models.User) error {
	return r.source.Create(ctx, userToRecord(user))
}

func (r *UserRepository) Update(ctx context.Context, user models.User) error {
	return r.source.Update(ctx, userToRecord(user))
}

func (r *UserRepository) Delete(ctx context.Context) error {
	return r.source.Delete(ctx)
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	return r.source.DeleteAll(ctx)
}
