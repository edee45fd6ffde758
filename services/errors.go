package services

import "errors"

// Common service-level errors
var (
	// ErrSessionExpired means the auth session must be re-established
	// before the operation can succeed. Callers special-case it into a
	// re-authentication prompt rather than a plain error banner.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotificationsDenied is returned when the user declined the
	// notification permission prompt.
	ErrNotificationsDenied = errors.New("notification permission denied")

	// ErrNotSignedIn is returned by account operations that require a
	// signed-in user.
	ErrNotSignedIn = errors.New("not signed in")
)
