package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"expense-tracker/database"
	"expense-tracker/models"
)

// AccountService drives the account lifecycle: authenticating, linking the
// cloud store, keeping the stored user details current, and the daily
// reminder toggle.
type AccountService struct {
	auth          Authenticator
	notifier      Notifier
	db            Database
	remoteFactory RemoteFactory
	logger        *logrus.Logger
}

func NewAccountService(auth Authenticator, notifier Notifier, db Database, remoteFactory RemoteFactory, logger *logrus.Logger) *AccountService {
	return &AccountService{
		auth:          auth,
		notifier:      notifier,
		db:            db,
		remoteFactory: remoteFactory,
		logger:        logger,
	}
}

// SignIn authenticates, links the user's cloud store and reconciles it with
// the local one, then makes sure the account details are stored.
func (as *AccountService) SignIn(ctx context.Context, email, password string) (database.SyncReport, error) {
	user, err := as.auth.SignIn(ctx, email, password)
	if err != nil {
		return database.SyncReport{}, err
	}
	return as.link(ctx, user)
}

// SignUp registers a fresh account and links its (empty) cloud store.
func (as *AccountService) SignUp(ctx context.Context, email, password string) (database.SyncReport, error) {
	user, err := as.auth.SignUp(ctx, email, password)
	if err != nil {
		return database.SyncReport{}, err
	}
	return as.link(ctx, user)
}

// SignInWithProvider links via a federated identity provider credential.
func (as *AccountService) SignInWithProvider(ctx context.Context, credential Credential) (database.SyncReport, error) {
	user, err := as.auth.SignInWithProvider(ctx, credential)
	if err != nil {
		return database.SyncReport{}, err
	}
	return as.link(ctx, user)
}

func (as *AccountService) link(ctx context.Context, user models.User) (database.SyncReport, error) {
	remote, err := as.remoteFactory(ctx, user.ID)
	if err != nil {
		return database.SyncReport{}, err
	}

	report, err := as.db.SignIn(ctx, remote)
	if err != nil {
		// Signed in regardless; the merge can be retried
		return report, err
	}

	if err := as.ensureUserStored(ctx, user); err != nil {
		as.logger.WithError(err).Warn("failed to store account details after sign-in")
	}
	return report, nil
}

// ensureUserStored writes the authenticated user's details into the active
// store, updating in place when details are already present.
func (as *AccountService) ensureUserStored(ctx context.Context, user models.User) error {
	stored, err := as.db.FetchUser(ctx)
	if err != nil {
		return err
	}
	if stored == nil {
		return as.db.SaveUser(ctx, user)
	}
	if *stored != user {
		return as.db.UpdateUser(ctx, user)
	}
	return nil
}

// SignOut ends the auth session, unlinks the cloud store and purges the
// local cache so the next local-only session starts clean.
func (as *AccountService) SignOut(ctx context.Context) error {
	if err := as.auth.SignOut(ctx); err != nil {
		return err
	}
	return as.db.SignOut(ctx, true)
}

// UpdateEmail changes the account email with the provider first, then in
// the stored user record. ErrSessionExpired passes through untouched so the
// caller can run the re-auth flow.
func (as *AccountService) UpdateEmail(ctx context.Context, newEmail string) error {
	if err := as.auth.UpdateEmail(ctx, newEmail); err != nil {
		return err
	}

	user := as.auth.CurrentUser()
	if user == nil {
		return ErrNotSignedIn
	}
	updated := *user
	updated.Email = newEmail
	return as.ensureUserStored(ctx, updated)
}

// UpdatePassword changes the account password with the provider.
func (as *AccountService) UpdatePassword(ctx context.Context, newPassword string) error {
	return as.auth.UpdatePassword(ctx, newPassword)
}

// Reauthenticate re-establishes an expired session.
func (as *AccountService) Reauthenticate(ctx context.Context, password string) error {
	return as.auth.Reauthenticate(ctx, password)
}

// EnableDailyReminder asks for notification permission and schedules the
// daily entry reminder.
func (as *AccountService) EnableDailyReminder(ctx context.Context, hour, minute int) error {
	granted, err := as.notifier.RequestPermission(ctx)
	if err != nil {
		return err
	}
	if !granted {
		return ErrNotificationsDenied
	}
	return as.notifier.ScheduleDaily(ctx, hour, minute)
}

// DisableDailyReminder cancels the daily entry reminder.
func (as *AccountService) DisableDailyReminder(ctx context.Context) error {
	return as.notifier.CancelDaily(ctx)
}
