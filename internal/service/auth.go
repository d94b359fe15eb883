package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/foodygo/identity-server/internal/logger"
	"github.com/foodygo/identity-server/internal/model"
)

// dummyPasswordHash is compared against when no usable hash exists so that
// unknown emails cost the same as wrong passwords.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Auth handles password and federated login, refresh and logout. Each account
// holds at most one token pair; issuing a new pair supersedes the previous one.
type Auth struct {
	accounts model.AccountStore
	roles    model.RoleDirectory
	hasher   model.PasswordHasher
	tokens   model.TokenManager
	logger   *logger.Logger
}

func NewAuth(
	accounts model.AccountStore,
	roles model.RoleDirectory,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		accounts: accounts,
		roles:    roles,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifies the password and starts a new session.
func (a *Auth) Login(ctx context.Context, email, password string) (model.SessionResult, error) {
	email = normalizeEmail(email)
	a.logger.Debug("Auth service: starting login", "email", email)

	account, err := a.verify(ctx, email, password)
	if err != nil {
		return model.SessionResult{}, err
	}

	result, err := a.startSession(ctx, account)
	if err != nil {
		return model.SessionResult{}, err
	}

	a.logger.Info("Auth service: login completed",
		"email", account.Email,
		"account_id", account.ID)

	return result, nil
}

func (a *Auth) verify(ctx context.Context, email, password string) (model.Account, error) {
	account, err := a.accounts.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		_ = a.hasher.Compare(dummyPasswordHash, password)
		a.logger.Info("Auth service: login rejected", "email", email, "reason", "unknown email")
		return model.Account{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get account by email",
			"email", email,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	hash := dummyPasswordHash
	if account.PasswordHash != nil {
		hash = *account.PasswordHash
	}
	if err := a.hasher.Compare(hash, password); err != nil || account.PasswordHash == nil {
		a.logger.Info("Auth service: login rejected", "email", email, "reason", "bad password")
		return model.Account{}, model.ErrInvalidCredentials
	}

	if !account.Usable() {
		a.logger.Info("Auth service: login rejected", "email", email, "reason", "account not usable")
		return model.Account{}, model.ErrInvalidCredentials
	}

	return account, nil
}

// Refresh issues a new access token for the presented refresh token. The
// refresh token itself is not rotated.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.SessionResult, error) {
	a.logger.Debug("Auth service: processing token refresh")

	email, err := a.tokens.SubjectOf(refreshToken, model.TokenKindRefresh)
	if err != nil {
		a.logger.Info("Auth service: refresh token rejected", "error", err.Error())
		return model.SessionResult{}, err
	}

	account, err := a.accounts.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.SessionResult{}, fmt.Errorf("account for refresh token: %w", model.ErrUnauthorized)
	}
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if !sameToken(account.RefreshToken, refreshToken) {
		a.logger.Info("Auth service: superseded refresh token presented", "email", email)
		return model.SessionResult{}, fmt.Errorf("refresh token superseded: %w", model.ErrUnauthorized)
	}
	if !account.Usable() {
		return model.SessionResult{}, fmt.Errorf("account not usable: %w", model.ErrUnauthorized)
	}

	principal, err := a.principal(account)
	if err != nil {
		return model.SessionResult{}, err
	}

	access, err := a.tokens.IssueAccess(principal)
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	err = a.accounts.RotateAccess(ctx, account.ID, refreshToken, access)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: session replaced during refresh", "email", email)
		return model.SessionResult{}, fmt.Errorf("refresh token superseded: %w", model.ErrUnauthorized)
	}
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to persist access token: %w", err)
	}

	a.logger.Info("Auth service: token refresh completed", "account_id", account.ID)

	return model.SessionResult{
		AccountID:    account.ID,
		Email:        account.Email,
		FullName:     account.FullName,
		Role:         principal.Role,
		AccessToken:  access,
		RefreshToken: refreshToken,
	}, nil
}

// Logout clears the stored session of the access token's subject. It reports
// whether the stored access token is now empty.
func (a *Auth) Logout(ctx context.Context, accessToken string) (bool, error) {
	email, err := a.tokens.SubjectOf(accessToken, model.TokenKindAccess)
	if err != nil {
		return false, err
	}

	account, err := a.accounts.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: logout for missing account", "email", email)
		return false, fmt.Errorf("account %s: %w", email, model.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("failed to get account by email: %w", err)
	}

	cleared, err := a.accounts.ClearSession(ctx, account.ID)
	if err != nil {
		return false, fmt.Errorf("failed to clear session: %w", err)
	}

	a.logger.Info("Auth service: logout completed", "account_id", account.ID)

	return !cleared.HasSession(), nil
}

// LoginFederated starts a session for an email already asserted by an
// external identity provider, provisioning a password-less USER on first use.
// fullName is only used when provisioning.
func (a *Auth) LoginFederated(ctx context.Context, externalEmail, fullName string) (model.SessionResult, error) {
	email := normalizeEmail(externalEmail)
	if err := validateEmail(email); err != nil {
		return model.SessionResult{}, fmt.Errorf("%w: email: %s", model.ErrInvalidArgument, err.Error())
	}
	a.logger.Debug("Auth service: starting federated login", "email", email)

	account, err := a.accounts.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		account, err = a.provision(ctx, email, fullName)
	}
	if err != nil {
		return model.SessionResult{}, err
	}

	if !account.Usable() {
		a.logger.Info("Auth service: federated login rejected", "email", email, "reason", "account not usable")
		return model.SessionResult{}, fmt.Errorf("account not usable: %w", model.ErrUnauthorized)
	}

	result, err := a.startSession(ctx, account)
	if err != nil {
		return model.SessionResult{}, err
	}

	a.logger.Info("Auth service: federated login completed",
		"email", account.Email,
		"account_id", account.ID)

	return result, nil
}

func (a *Auth) provision(ctx context.Context, email, fullName string) (model.Account, error) {
	userRole, err := a.roles.ByName(model.RoleUser)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to resolve default role: %w", err)
	}

	fullName = strings.TrimSpace(fullName)
	if utf8.RuneCountInString(fullName) > maxFullNameLength {
		fullName = ""
	}

	account, err := a.accounts.Save(ctx, model.Account{
		Email:        email,
		FullName:     fullName,
		RoleID:       userRole.ID,
		AccountState: model.StateActive,
	})
	if errors.Is(err, model.ErrConflict) {
		return a.accounts.FindByEmail(ctx, email)
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to provision federated account: %w", err)
	}

	a.logger.Info("Auth service: federated account provisioned",
		"email", email,
		"account_id", account.ID)

	return account, nil
}

// Authenticate resolves the caller behind an access token. The token must be
// the one currently stored for a usable account.
func (a *Auth) Authenticate(ctx context.Context, accessToken string) (model.Caller, error) {
	email, err := a.tokens.SubjectOf(accessToken, model.TokenKindAccess)
	if err != nil {
		return model.Caller{}, err
	}

	account, err := a.accounts.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Caller{}, fmt.Errorf("account for access token: %w", model.ErrUnauthorized)
	}
	if err != nil {
		return model.Caller{}, fmt.Errorf("failed to get account by email: %w", err)
	}
	if !sameToken(account.AccessToken, accessToken) || !account.Usable() {
		return model.Caller{}, fmt.Errorf("access token no longer valid: %w", model.ErrUnauthorized)
	}

	principal, err := a.principal(account)
	if err != nil {
		return model.Caller{}, err
	}

	return model.Caller{Email: principal.Email, Role: principal.Role}, nil
}

func (a *Auth) startSession(ctx context.Context, account model.Account) (model.SessionResult, error) {
	principal, err := a.principal(account)
	if err != nil {
		return model.SessionResult{}, err
	}

	access, err := a.tokens.IssueAccess(principal)
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := a.tokens.IssueRefresh(principal)
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := a.accounts.StoreSession(ctx, account.ID, access, refresh); err != nil {
		a.logger.Error("Auth service: failed to store session",
			"account_id", account.ID,
			"error", err.Error())
		return model.SessionResult{}, fmt.Errorf("failed to store session: %w", err)
	}

	return model.SessionResult{
		AccountID:    account.ID,
		Email:        account.Email,
		FullName:     account.FullName,
		Role:         principal.Role,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (a *Auth) principal(account model.Account) (model.Principal, error) {
	roleRecord, err := a.roles.ByID(account.RoleID)
	if err != nil {
		return model.Principal{}, fmt.Errorf("failed to resolve role of account %d: %w", account.ID, err)
	}
	return model.Principal{Email: account.Email, Role: roleRecord.Name}, nil
}

func sameToken(stored *string, presented string) bool {
	if stored == nil || *stored == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*stored), []byte(presented)) == 1
}
