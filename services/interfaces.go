package services

import (
	"context"

	"golang.org/x/oauth2"

	"expense-tracker/database"
	"expense-tracker/models"
	"expense-tracker/repository"
)

// Credential carries a federated sign-in result from an identity provider.
type Credential struct {
	ProviderID string
	Token      *oauth2.Token
}

// Authenticator is the external auth-provider collaborator. Implementations
// must return ErrSessionExpired (possibly wrapped) when an operation fails
// because the session needs re-authentication, so callers can prompt instead
// of showing a generic error.
type Authenticator interface {
	CurrentUser() *models.User
	SignIn(ctx context.Context, email, password string) (models.User, error)
	SignUp(ctx context.Context, email, password string) (models.User, error)
	SignOut(ctx context.Context) error
	SignInWithProvider(ctx context.Context, credential Credential) (models.User, error)
	UpdateEmail(ctx context.Context, newEmail string) error
	UpdatePassword(ctx context.Context, newPassword string) error
	Reauthenticate(ctx context.Context, password string) error
}

// Notifier is the external notification-scheduling collaborator. The core
// only asks for permission and (un)schedules the daily reminder; delivery is
// the platform's business.
type Notifier interface {
	RequestPermission(ctx context.Context) (bool, error)
	ScheduleDaily(ctx context.Context, hour, minute int) error
	CancelDaily(ctx context.Context) error
}

// Database is the data-access surface the account flows need. Implemented
// by *database.Manager.
type Database interface {
	SignIn(ctx context.Context, remote *repository.Handler) (database.SyncReport, error)
	SignOut(ctx context.Context, purge bool) error
	FetchUser(ctx context.Context) (*models.User, error)
	SaveUser(ctx context.Context, user models.User) error
	UpdateUser(ctx context.Context, user models.User) error
}

// RemoteFactory builds a repository handler over the cloud store for one
// signed-in user.
type RemoteFactory func(ctx context.Context, userID string) (*repository.Handler, error)
