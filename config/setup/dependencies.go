package setup

import (
	"context"
	"errors"
	"fmt"

	cf "cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"expense-tracker/config"
	"expense-tracker/database"
	"expense-tracker/repository"
	"expense-tracker/services"
	"expense-tracker/storage"
	"expense-tracker/storage/firestore"
	"expense-tracker/storage/local"
	"expense-tracker/storage/memory"
)

// InitLocalStore opens the device-local store and builds the local
// repository handler over it.
//
// The corrupt-blob policy lives here, not inside the storage layer: a
// persisted collection that no longer decodes is logged and reset to empty,
// trading the corrupt data for availability. Anything other than a decode
// error still fails the startup.
func InitLocalStore(cfg *config.Config, logger *logrus.Logger) (*local.Store, *repository.Handler, error) {
	store, err := local.Open(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}

	expenses := local.NewCollection[storage.ExpenseRecord](store, local.KeyExpenses)
	incomes := local.NewCollection[storage.IncomeRecord](store, local.KeyIncomes)
	users := local.NewSingleton[storage.UserRecord](store, local.KeyUserDetails)

	type loadable interface {
		Load(ctx context.Context) error
		Reset(ctx context.Context) error
	}

	ctx := context.Background()
	for _, collection := range []loadable{expenses, incomes, users} {
		err := collection.Load(ctx)
		var decodeErr *local.DecodeError
		if errors.As(err, &decodeErr) {
			logger.WithError(decodeErr).Warnf("resetting corrupt collection %q", decodeErr.Key)
			err = collection.Reset(ctx)
		}
		if err != nil {
			store.Close()
			return nil, nil, err
		}
	}

	handler := repository.NewHandler(
		repository.NewExpenseRepository(expenses),
		repository.NewIncomeRepository(incomes),
		repository.NewUserRepository(users),
	)

	logger.WithField("path", cfg.DatabasePath).Info("local store initialized")
	return store, handler, nil
}

// InitManager builds the database manager in local-only mode.
func InitManager(localHandler *repository.Handler, logger *logrus.Logger) *database.Manager {
	return database.NewManager(localHandler, logger)
}

// RemoteFactory returns the factory that builds a cloud-backed handler for
// a signed-in user. Credentials come from the token source when one is
// given, otherwise from the configured credentials file or the ambient
// application-default credentials.
func RemoteFactory(cfg *config.Config, tokenSource oauth2.TokenSource) services.RemoteFactory {
	return func(ctx context.Context, userID string) (*repository.Handler, error) {
		if !cfg.RemoteConfigured() {
			return nil, fmt.Errorf("no cloud project configured")
		}

		var opts []option.ClientOption
		switch {
		case tokenSource != nil:
			opts = append(opts, option.WithTokenSource(tokenSource))
		case cfg.Firestore.CredentialsFile != "":
			opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
		}

		client, err := cf.NewClient(ctx, cfg.Firestore.ProjectID, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to cloud store: %w", err)
		}

		return repository.NewHandler(
			repository.NewExpenseRepository(
				firestore.NewCollection[storage.ExpenseRecord](client, userID, firestore.CollectionExpenses)),
			repository.NewIncomeRepository(
				firestore.NewCollection[storage.IncomeRecord](client, userID, firestore.CollectionIncomes)),
			repository.NewUserRepository(
				firestore.NewSingleton[storage.UserRecord](client, userID, firestore.CollectionUserDetails)),
		), nil
	}
}

// PreviewHandler builds an in-memory handler seeded with fixture data.
func PreviewHandler() *repository.Handler {
	return repository.NewHandler(
		repository.NewExpenseRepository(memory.NewCollection(memory.SampleExpenses()...)),
		repository.NewIncomeRepository(memory.NewCollection(memory.SampleIncomes()...)),
		repository.NewUserRepository(memory.NewSingleton(memory.SampleUser())),
	)
}

// Shutdown closes everything InitLocalStore opened.
func Shutdown(store *local.Store, logger *logrus.Logger) {
	if store != nil {
		if err := store.Close(); err != nil {
			logger.WithError(err).Warn("failed to close local store")
			return
		}
		logger.Info("local store closed")
	}
}
