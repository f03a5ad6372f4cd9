package usecase

import (
	"context"

	"smartlunch/internal/domain/entity"
)

// AccountUsecase is the host-facing surface of the poller: account
// lifecycle, selection commands and read models.
type AccountUsecase interface {
	// Login signs in with a password, persists the session and sets the account up.
	// The password is never stored.
	Login(ctx context.Context, email, password, baseURL string) (*entity.SessionStatus, error)

	// Setup restores an account from persisted state. A missing or rejected
	// session fails with ErrNeedsReauth.
	Setup(ctx context.Context, email string) error

	// Teardown stops polling for the account and forgets its live state.
	// Persisted state is kept.
	Teardown(ctx context.Context, email string) error

	// Remove tears the account down and deletes its persisted state.
	Remove(ctx context.Context, email string) error

	// Reauth logs in again, replaces the session in place and refreshes every level.
	Reauth(ctx context.Context, email, password string) (*entity.SessionStatus, error)

	// Refresh runs a full refresh of every level now.
	Refresh(ctx context.Context, email string) error

	// Select validates value against the latest option set of level and
	// cascades to dependent levels. An empty value clears the selection.
	Select(ctx context.Context, email string, level entity.Level, value string) (*entity.OptionSet, error)

	Snapshot(ctx context.Context, email string, level entity.Level) (*entity.OptionSet, error)
	Funding(ctx context.Context, email string) (*entity.FundingSnapshot, error)
	Session(ctx context.Context, email string) (*entity.SessionStatus, error)

	// SetServerDefaultPlace would change the default place on the server.
	// It always fails with ErrUnsupportedOperation.
	SetServerDefaultPlace(ctx context.Context, email string, placeID int64) error

	// Accounts lists the keys of the accounts that are set up.
	Accounts() []string
}
