package model

import (
	"context"
	"time"
)

// AccountStore defines persistence operations for accounts.
//
// Lookups by email include soft-deleted rows; phone lookups and phone
// uniqueness only consider accounts that are not deleted. Token columns and
// lifecycle flags have targeted writers so concurrent logins and state
// changes never clobber each other through a full-row Save.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (Account, error)
	FindByPhone(ctx context.Context, phone string) (Account, error)
	FindByID(ctx context.Context, id int64) (Account, error)
	// Save inserts the account when ID is zero and updates profile fields otherwise.
	Save(ctx context.Context, account Account) (Account, error)
	CountActive(ctx context.Context) (int64, error)
	CountRegisteredSince(ctx context.Context, since time.Time) (int64, error)

	// StoreSession overwrites both token columns. Last write wins.
	StoreSession(ctx context.Context, id int64, accessToken, refreshToken string) error
	// RotateAccess replaces the access token only while the stored refresh
	// token still equals presentedRefresh. Returns ErrNotFound otherwise.
	RotateAccess(ctx context.Context, id int64, presentedRefresh, accessToken string) error
	ClearSession(ctx context.Context, id int64) (Account, error)
	SetState(ctx context.Context, id int64, state AccountState) (Account, error)
}

// CustomerStore is the slice of the customer profile aggregate this service owns.
type CustomerStore interface {
	MarkDeletedByAccount(ctx context.Context, accountID int64) error
}

// Account represents a stored platform account with its single live session.
type Account struct {
	ID           int64
	Email        string
	Phone        *string
	FullName     string
	AvatarURL    *string
	PasswordHash *string
	RoleID       RoleID
	AccessToken  *string
	RefreshToken *string
	AccountState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountState holds the three independent lifecycle bits.
type AccountState struct {
	Enabled   bool
	NonLocked bool
	Deleted   bool
}

var (
	// StateActive is the only state in which an account may authenticate.
	StateActive = AccountState{Enabled: true, NonLocked: true, Deleted: false}
	// StateSuspended is the soft-deleted state.
	StateSuspended = AccountState{Enabled: false, NonLocked: false, Deleted: true}
)

// Usable reports whether the account may authenticate.
func (s AccountState) Usable() bool {
	return s.Enabled && s.NonLocked && !s.Deleted
}

// Active reports whether the state is exactly StateActive.
func (s AccountState) Active() bool {
	return s == StateActive
}

// HasSession reports whether a token pair is currently stored.
func (a Account) HasSession() bool {
	return a.AccessToken != nil && *a.AccessToken != ""
}

// UpdateAccountParams carries optional profile changes. Nil fields are left untouched.
type UpdateAccountParams struct {
	Password *string
	Phone    *string
	FullName *string
}

// AccountStats is a snapshot of account counters.
type AccountStats struct {
	Active          int64
	RegisteredSince int64
	Since           time.Time
}

// PhoneNormalizer canonicalises phone numbers before they are stored or compared.
type PhoneNormalizer interface {
	Normalize(raw string) (string, error)
}
